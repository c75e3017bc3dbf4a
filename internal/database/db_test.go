package database

import (
	"testing"

	"github.com/hotsauce86/Stream-TV/internal/config"
)

func TestDSN(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{
			name: "with password",
			cfg:  config.Config{DBUser: "stv", DBPass: "secret", DBHost: "db", DBPort: "3306", DBName: "streamtv"},
			want: "stv:secret@tcp(db:3306)/streamtv?charset=utf8mb4&parseTime=true&loc=UTC",
		},
		{
			name: "passwordless dev account",
			cfg:  config.Config{DBUser: "root", DBHost: "localhost", DBPort: "3306", DBName: "streamtv"},
			want: "root@tcp(localhost:3306)/streamtv?charset=utf8mb4&parseTime=true&loc=UTC",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := dsn(tc.cfg); got != tc.want {
				t.Errorf("dsn = %q, want %q", got, tc.want)
			}
		})
	}
}
