package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ncinga/temi-event-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleRegistrations(n int) []types.Registration {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	rows := make([]types.Registration, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, types.Registration{
			ID:          primitive.NewObjectID(),
			EventID:     "expo-2025",
			Name:        "Visitor",
			Email:       "visitor@example.com",
			Designation: "Engineer",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
			Source:      types.SourceKiosk,
		})
	}
	return rows
}

func TestRegistrationsCSVHeaderAndRowCount(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		out, err := RegistrationsCSV(sampleRegistrations(n))
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		assert.Len(t, lines, n+1, "expected header plus %d rows", n)
		assert.Equal(t, "id,event_id,name,email,designation,created_at,source", lines[0])
	}
}

func TestRegistrationsCSVEmptyIsHeaderOnly(t *testing.T) {
	out, err := RegistrationsCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "id,event_id,name,email,designation,created_at,source\n", out)
}

func TestRegistrationsCSVRowContent(t *testing.T) {
	rows := sampleRegistrations(1)
	out, err := RegistrationsCSV(rows)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		rows[0].ID.Hex()+",expo-2025,Visitor,visitor@example.com,Engineer,2025-03-10T09:00:00Z,kiosk",
		lines[1])
}

func TestFeedbackCSV(t *testing.T) {
	id := primitive.NewObjectID()
	rows := []types.Feedback{
		{
			ID:        id,
			EventID:   "expo-2025",
			Rating:    4,
			Comment:   "great talks",
			CreatedAt: time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
			Source:    types.SourceQRPhone,
		},
		{
			ID:      primitive.NewObjectID(),
			EventID: "expo-2025",
			Rating:  5,
			// no comment, no timestamp: optionals must render as empty strings
		},
	}

	out, err := FeedbackCSV(rows)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,event_id,rating,comment,created_at,source", lines[0])
	assert.Equal(t, id.Hex()+",expo-2025,4,great talks,2025-03-10T09:30:00Z,qr_phone", lines[1])
	assert.True(t, strings.HasSuffix(lines[2], ",expo-2025,5,,,"))
}

func TestRegistrationsWorkbook(t *testing.T) {
	rows := sampleRegistrations(3)
	data, err := RegistrationsWorkbook(rows)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()

	sheetRows, err := f.GetRows("Registrations")
	require.NoError(t, err)
	require.Len(t, sheetRows, 4)

	assert.Equal(t, []string{"Event ID", "Name", "Designation", "Email", "Created At", "Source"}, sheetRows[0])
	assert.Equal(t, []string{"expo-2025", "Visitor", "Engineer", "visitor@example.com", "2025-03-10T09:00:00Z", "kiosk"}, sheetRows[1])
}

func TestRegistrationsWorkbookEmpty(t *testing.T) {
	data, err := RegistrationsWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()

	sheetRows, err := f.GetRows("Registrations")
	require.NoError(t, err)
	assert.Len(t, sheetRows, 1)
}

func TestVisitorWorkbook(t *testing.T) {
	data, err := VisitorWorkbook(types.VisitorExportRequest{
		Name:        "Jane Perera",
		Designation: "Engineer",
		Email:       "jane@example.com",
	}, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()

	sheetRows, err := f.GetRows("Registrations")
	require.NoError(t, err)
	require.Len(t, sheetRows, 2)

	assert.Equal(t, []string{"Name", "Designation", "Email", "Submitted At"}, sheetRows[0])
	assert.Equal(t, []string{"Jane Perera", "Engineer", "jane@example.com", "2025-03-10 09:00:00"}, sheetRows[1])
}
