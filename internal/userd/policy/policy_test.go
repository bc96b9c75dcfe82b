package policy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermit(t *testing.T) {
	t.Parallel()

	actions := []Action{
		ActionAccountCreate,
		ActionAccountList,
		ActionAccountGet,
		ActionAccountUpdate,
		ActionAccountApprove,
		ActionAccountDelete,
	}

	t.Run("administrative roles allowed on every action", func(t *testing.T) {
		for _, action := range actions {
			for _, role := range []int{0, 1, 2} {
				require.True(t, Permit(role, action), "role %d on %s", role, action)
			}
		}
	})

	t.Run("non-administrative roles denied", func(t *testing.T) {
		for _, action := range actions {
			for _, role := range []int{3, 4, 100, -1} {
				require.False(t, Permit(role, action), "role %d on %s", role, action)
			}
		}
	})

	t.Run("unknown action denied for every role", func(t *testing.T) {
		for _, role := range []int{0, 1, 2, 3} {
			require.False(t, Permit(role, Action("account:promote")))
		}
	})
}

func TestCanMatchesPermit(t *testing.T) {
	t.Parallel()

	permit := Can(ActionAccountApprove)
	require.True(t, permit(0))
	require.True(t, permit(2))
	require.False(t, permit(3))
}
