package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestConstructors_AssignUniqueIDs(t *testing.T) {
	a := Success("one")
	b := Success("one")
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, domain.NotifySuccess, a.Level)
	assert.Equal(t, domain.NotifyError, Error("x").Level)
	assert.Equal(t, domain.NotifyInfo, Info("x").Level)
}

func TestPrinter(t *testing.T) {
	var sb strings.Builder
	p := &Printer{Out: &sb}
	p.Notify(Success("Task created successfully!"))
	p.Notify(Error("Failed to create task"))
	assert.Equal(t, "Task created successfully!\nerror: Failed to create task\n", sb.String())
}

func TestFeed_DropsOldestWhenFull(t *testing.T) {
	f := NewFeed(2)
	f.Notify(Info("1"))
	f.Notify(Info("2"))
	f.Notify(Info("3")) // displaces "1"

	first := <-f.C()
	second := <-f.C()
	require.Equal(t, "2", first.Text)
	require.Equal(t, "3", second.Text)

	select {
	case n := <-f.C():
		t.Fatalf("unexpected notification %q", n.Text)
	default:
	}
}
