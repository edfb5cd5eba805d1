package services

import (
	"context"
	"testing"

	"gearguard/internal/dto"
	"gearguard/internal/entities"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestExportRequestsWritesBoldHeaderAndRows(t *testing.T) {
	requestRepo := newFakeRequestRepo()
	id := uuid.New()
	requestRepo.requests[id] = &entities.MaintenanceRequest{
		ID:            id,
		RequestNumber: "REQ-202508-0001",
		Subject:       "Press is leaking oil",
		Type:          entities.RequestTypeCorrective,
		Stage:         entities.StageNew,
		Priority:      entities.PriorityHigh,
		Cost:          null.Float64From(120.50),
	}

	svc := NewReportService(requestRepo, zap.NewNop())
	buf, err := svc.ExportRequests(context.Background(), dto.RequestListFilter{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(reportSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Request #", title)

	styleID, err := f.GetCellStyle(reportSheet, "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)

	number, err := f.GetCellValue(reportSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "REQ-202508-0001", number)

	subject, err := f.GetCellValue(reportSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Press is leaking oil", subject)
}
