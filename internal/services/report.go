package services

import (
	"bytes"
	"context"
	"fmt"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"

	"github.com/aarondl/null/v8"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const reportSheet = "Requests"

var reportHeader = []string{
	"Request #", "Subject", "Type", "Stage", "Priority",
	"Equipment", "Team", "Assigned To", "Scheduled", "Completed", "Cost",
}

type ReportServiceInterface interface {
	ExportRequests(ctx context.Context, filter dto.RequestListFilter) (*bytes.Buffer, error)
}

type ReportService struct {
	requestRepo repositories.RequestRepositoryInterface
	logger      *zap.Logger
}

func NewReportService(requestRepo repositories.RequestRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{requestRepo: requestRepo, logger: logger}
}

// ExportRequests renders the filtered request list as an xlsx workbook.
func (s *ReportService) ExportRequests(ctx context.Context, filter dto.RequestListFilter) (*bytes.Buffer, error) {
	requests, err := s.requestRepo.GetRequests(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(reportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, title := range reportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(reportSheet, cell, title); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	lastHeaderCell, err := excelize.CoordinatesToCellName(len(reportHeader), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(reportSheet, "A1", lastHeaderCell, headerStyle); err != nil {
		return nil, err
	}

	for i, request := range requests {
		row := i + 2

		var equipmentName, teamName, assigneeName string
		if request.Equipment != nil {
			equipmentName = request.Equipment.Name
		}
		if request.Team != nil {
			teamName = request.Team.Name
		}
		if request.AssignedTo != nil {
			assigneeName = request.AssignedTo.Name
		}

		values := []any{
			request.RequestNumber,
			request.Subject,
			request.Type,
			request.Stage,
			request.Priority,
			equipmentName,
			teamName,
			assigneeName,
			formatReportDate(request.ScheduledDate),
			formatReportDate(request.CompletedDate),
			request.Cost.Float64,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(reportSheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write report workbook: %w", err)
	}
	return buf, nil
}

func formatReportDate(t null.Time) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format("2006-01-02")
}
