package repository

import (
	"testing"

	"github.com/hotsauce86/Stream-TV/internal/model"
)

func TestCastTable(t *testing.T) {
	cases := []struct {
		role    model.CastRole
		want    string
		wantErr bool
	}{
		{model.CastMain, "main_cast", false},
		{model.CastRecurring, "recurring_cast", false},
		{model.CastRole("guest"), "", true},
		{model.CastRole(""), "", true},
	}
	for _, tc := range cases {
		got, err := castTable(tc.role)
		if tc.wantErr {
			if err == nil {
				t.Errorf("castTable(%q): expected error", tc.role)
			}
			continue
		}
		if err != nil {
			t.Errorf("castTable(%q): %v", tc.role, err)
			continue
		}
		if got != tc.want {
			t.Errorf("castTable(%q) = %q, want %q", tc.role, got, tc.want)
		}
	}
}
