package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    string
		wantErr error
	}{
		{name: "string", in: "./packages", want: "./packages"},
		{name: "nil", in: nil, wantErr: ErrMissingPath},
		{name: "empty", in: "", wantErr: ErrMissingPath},
		{name: "number", in: 42, wantErr: ErrInvalidPathType},
		{name: "bool", in: true, wantErr: ErrInvalidPathType},
		{name: "list", in: []any{"a", "b"}, wantErr: ErrInvalidPathType},
		{name: "map", in: map[string]any{"a": 1}, wantErr: ErrInvalidPathType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePath(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
