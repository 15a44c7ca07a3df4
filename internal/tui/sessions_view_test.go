package tui

import (
	"testing"

	"github.com/MKhiriev/go-gpu-missions/models"
	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
)

func TestPaginationFooter(t *testing.T) {
	assert.Empty(t, paginationFooter(models.Pagination{PageIndex: 1, PageSize: 10}))
	assert.Equal(t, "page 2/4 · size 10 · total 35",
		paginationFooter(models.Pagination{PageIndex: 2, PageSize: 10, Total: 35}))
}

func TestSessionRows_Placeholders(t *testing.T) {
	rows := sessionRows([]models.Session{{ID: 42, Status: models.MissionWaiting}})

	assert.Equal(t, []table.Row{{"42", "--", "--", "--", "waiting", "--", "--", closeAction}}, rows)
}

func TestSessionColumns(t *testing.T) {
	var titles []string
	for _, c := range sessionColumns() {
		titles = append(titles, c.Title)
	}
	assert.Equal(t, []string{"ID", "Category", "GPU", "URL", "Status", "Started", "Updated", "Action"}, titles)
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "ab", fitText("abcdefgh", 2))
	assert.Equal(t, "abc", fitText("abc", 0))
}
