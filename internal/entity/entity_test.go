package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestType_IsValid(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want bool
	}{
		{"valid success", TypeSuccess, true},
		{"valid error", TypeError, true},
		{"valid info", TypeInfo, true},
		{"valid warning", TypeWarning, true},
		{"valid loading", TypeLoading, true},
		{"invalid empty", Type(""), false},
		{"invalid other", Type("critical"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.IsValid())
		})
	}
}

func TestPosition_IsValid(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"valid top", PositionTop, true},
		{"valid bottom", PositionBottom, true},
		{"valid center", PositionCenter, true},
		{"invalid empty", Position(""), false},
		{"invalid other", Position("left"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pos.IsValid())
		})
	}
}

func TestTheme_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		theme Theme
		want  bool
	}{
		{"valid light", ThemeLight, true},
		{"valid dark", ThemeDark, true},
		{"valid colored", ThemeColored, true},
		{"valid system", ThemeSystem, true},
		{"invalid empty", Theme(""), false},
		{"invalid other", Theme("solarized"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.theme.IsValid())
		})
	}
}

func TestNewRequest_Defaults(t *testing.T) {
	req := NewRequest("hello")

	assert.Equal(t, "hello", req.Message)
	assert.Equal(t, DefaultType, req.Type)
	assert.Equal(t, DefaultPosition, req.Position)
	assert.Equal(t, DefaultTheme, req.Theme)
	assert.Equal(t, DefaultDuration, req.Duration)
	assert.True(t, req.Closable)
	assert.False(t, req.ShowProgress)
}

func TestRequest_Normalize(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want Request
	}{
		{
			name: "valid request untouched",
			req:  Request{Type: TypeError, Position: PositionTop, Theme: ThemeLight, Duration: time.Second},
			want: Request{Type: TypeError, Position: PositionTop, Theme: ThemeLight, Duration: time.Second},
		},
		{
			name: "unknown enums degrade to defaults",
			req:  Request{Type: "fatal", Position: "left", Theme: "solarized"},
			want: Request{Type: DefaultType, Position: DefaultPosition, Theme: DefaultTheme},
		},
		{
			name: "negative duration clamps to zero",
			req:  Request{Type: TypeInfo, Position: PositionTop, Theme: ThemeDark, Duration: -time.Second},
			want: Request{Type: TypeInfo, Position: PositionTop, Theme: ThemeDark, Duration: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Normalize())
		})
	}
}

func TestFromRequest(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	req := NewRequest("saved")
	req.Description = "all changes written"
	req.Type = TypeSuccess

	toast := FromRequest(req, 7, now)

	require.NotEmpty(t, toast.ID)
	assert.Equal(t, uint64(7), toast.Seq)
	assert.Equal(t, now, toast.CreatedAt)
	assert.Equal(t, "saved", toast.Message)
	assert.Equal(t, TypeSuccess, toast.Type)
	assert.Equal(t, "all changes written", toast.Description)
	assert.Equal(t, PhaseEntering, toast.Phase)
}

func TestFromRequest_MalformedDegrades(t *testing.T) {
	toast := FromRequest(Request{Type: "nope", Position: "nope", Theme: "nope"}, 1, time.Now())

	assert.Empty(t, toast.Message)
	assert.Equal(t, DefaultType, toast.Type)
	assert.Equal(t, DefaultPosition, toast.Position)
	assert.Equal(t, DefaultTheme, toast.Theme)
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestToast_OlderThan(t *testing.T) {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		a    *Toast
		b    *Toast
		want bool
	}{
		{
			name: "earlier creation time wins",
			a:    &Toast{CreatedAt: base, Seq: 5},
			b:    &Toast{CreatedAt: base.Add(time.Second), Seq: 1},
			want: true,
		},
		{
			name: "later creation time loses",
			a:    &Toast{CreatedAt: base.Add(time.Second), Seq: 1},
			b:    &Toast{CreatedAt: base, Seq: 5},
			want: false,
		},
		{
			name: "tie broken by insertion order",
			a:    &Toast{CreatedAt: base, Seq: 1},
			b:    &Toast{CreatedAt: base, Seq: 2},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.OlderThan(tt.b))
		})
	}
}
