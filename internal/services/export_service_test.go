package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Hayatzendah/essam-question-engine/internal/utils"
)

func TestExportService_Excel(t *testing.T) {
	f := newServiceFixture(t, nil)
	ctx := context.Background()

	created, err := f.service.Create(ctx, validCreateRequest(), nil, "admin-1")
	require.NoError(t, err)

	export := NewExportService(f.repo, utils.NewDefaultLogger())
	data, err := export.ExportQuestionsToExcel(ctx, []uint{created.ID})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Questions")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Question Type", rows[0][0])
	assert.Equal(t, "Multiple Choice", rows[1][0])
	assert.Equal(t, "Wähle die richtige Antwort", rows[1][1])
}

func TestExportService_CSV(t *testing.T) {
	f := newServiceFixture(t, nil)
	ctx := context.Background()

	created, err := f.service.Create(ctx, validCreateRequest(), nil, "admin-1")
	require.NoError(t, err)

	export := NewExportService(f.repo, utils.NewDefaultLogger())
	data, err := export.ExportQuestionsToCSV(ctx, []uint{created.ID})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "goethe", records[1][4])
	assert.Equal(t, "B1", records[1][5])
}

func TestExportService_NoIDs(t *testing.T) {
	f := newServiceFixture(t, nil)

	export := NewExportService(f.repo, utils.NewDefaultLogger())
	_, err := export.ExportQuestionsToExcel(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestExportService_UnknownIDs(t *testing.T) {
	f := newServiceFixture(t, nil)

	export := NewExportService(f.repo, utils.NewDefaultLogger())
	_, err := export.ExportQuestionsToCSV(context.Background(), []uint{42})
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}
