package browser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitSequenceBuildsBackStack(t *testing.T) {
	tests := []struct {
		name   string
		visits []string
		back   []string
	}{
		{"single", []string{"a.com"}, []string{}},
		{"three", []string{"a.com", "b.com", "c.com"}, []string{"b.com", "a.com"}},
		{"duplicates", []string{"a.com", "a.com", "a.com"}, []string{"a.com", "a.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := NewNavigationState()
			for _, u := range tt.visits {
				nav.Visit(u)
			}

			cur, ok := nav.Current()
			require.True(t, ok)
			assert.Equal(t, tt.visits[len(tt.visits)-1], cur)
			assert.Equal(t, tt.back, nav.BackStack())
			assert.Empty(t, nav.ForwardStack())
		})
	}
}

func TestCurrentWhenEmpty(t *testing.T) {
	nav := NewNavigationState()
	cur, ok := nav.Current()
	assert.False(t, ok)
	assert.Empty(t, cur)
}

func TestBackForwardOnEmptyStacks(t *testing.T) {
	nav := NewNavigationState()

	_, err := nav.Back()
	assert.ErrorIs(t, err, ErrNoBack)
	assert.ErrorIs(t, err, ErrStackExhausted)

	nav.Visit("a.com")
	_, err = nav.Forward()
	assert.ErrorIs(t, err, ErrNoForward)
	assert.True(t, errors.Is(err, ErrStackExhausted))

	cur, _ := nav.Current()
	assert.Equal(t, "a.com", cur)
	assert.Empty(t, nav.BackStack())
	assert.Empty(t, nav.ForwardStack())
}

func TestBackThenForwardRoundTrip(t *testing.T) {
	nav := NewNavigationState()
	for _, u := range []string{"a.com", "b.com", "c.com", "d.com"} {
		nav.Visit(u)
	}
	_, err := nav.Back()
	require.NoError(t, err)

	beforeCur, _ := nav.Current()
	beforeBack := nav.BackStack()
	beforeForward := nav.ForwardStack()

	prev, err := nav.Back()
	require.NoError(t, err)
	assert.Equal(t, "b.com", prev)

	next, err := nav.Forward()
	require.NoError(t, err)
	assert.Equal(t, beforeCur, next)
	assert.Equal(t, beforeBack, nav.BackStack())
	assert.Equal(t, beforeForward, nav.ForwardStack())
}

func TestVisitDiscardsForwardStack(t *testing.T) {
	nav := NewNavigationState()
	nav.Visit("a.com")
	nav.Visit("b.com")
	nav.Visit("c.com")

	_, _ = nav.Back()
	_, _ = nav.Back()
	require.Equal(t, []string{"b.com", "c.com"}, nav.ForwardStack())
	require.True(t, nav.CanGoForward())

	nav.Visit("x.com")
	assert.Empty(t, nav.ForwardStack())
	assert.False(t, nav.CanGoForward())
	assert.Equal(t, []string{"a.com"}, nav.BackStack())
}

func TestEmptyVisitUnloadsPage(t *testing.T) {
	nav := NewNavigationState()
	nav.Visit("a.com")
	nav.Visit("")

	_, ok := nav.Current()
	assert.False(t, ok)
	assert.Equal(t, []string{"a.com"}, nav.BackStack())

	nav.Visit("b.com")
	assert.Equal(t, []string{"a.com"}, nav.BackStack())
}
