package viewstate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransitions(t *testing.T) {
	cases := []struct {
		from   View
		action Action
		want   View
	}{
		{Map, ShowList, List},
		{List, ShowMap, Map},
		{Map, ShowMap, Map},
		{List, ShowList, List},
		{Map, Add, Form},
		{List, Add, Form},
		{Form, Add, Form},
		{Form, Created, List},
		{Form, Cancel, List},
	}

	for _, tc := range cases {
		got, err := Next(tc.from, tc.action)
		require.NoError(t, err, "%s + %s", tc.from, tc.action)
		require.Equal(t, tc.want, got, "%s + %s", tc.from, tc.action)
	}
}

func TestInvalidTransitions(t *testing.T) {
	cases := []struct {
		from   View
		action Action
	}{
		{Map, Created},
		{List, Cancel},
		{Form, ShowMap},
		{Form, ShowList},
		{View("settings"), Add},
		{Map, Action("teleport")},
	}

	for _, tc := range cases {
		_, err := Next(tc.from, tc.action)
		require.ErrorIs(t, err, ErrInvalidTransition, "%s + %s", tc.from, tc.action)
	}
}

func TestInitialViewIsMap(t *testing.T) {
	require.Equal(t, Map, Initial)
	require.True(t, Initial.Valid())
}
