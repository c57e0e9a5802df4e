package mode

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/swalay/labelctl/internal/ui/toaster"
)

func TestNavigate(t *testing.T) {
	require.Equal(t, NavigateMsg{Path: "/labels"}, Navigate("/labels")())
}

func TestShowToast_IssuesFreshIDs(t *testing.T) {
	a := ShowToast("saved", toaster.StyleSuccess)().(ShowToastMsg)
	b := ShowToast("saved", toaster.StyleSuccess)().(ShowToastMsg)

	require.Equal(t, "saved", a.Message)
	require.Equal(t, toaster.StyleSuccess, a.Style)
	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID)
}

func TestShowToastWithID_AndDismiss(t *testing.T) {
	id := toaster.NewID()

	show := ShowToastWithID(id, "Creating account", toaster.StyleLoading)().(ShowToastMsg)
	dismiss := DismissToast(id)().(DismissToastMsg)

	require.Equal(t, id, show.ID)
	require.Equal(t, id, dismiss.ID)
}
