package conflict_test

import (
	"testing"

	"github.com/arthur-debert/dotstash/pkg/conflict"
	"github.com/arthur-debert/dotstash/pkg/errors"
	"github.com/arthur-debert/dotstash/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePaths(t *testing.T) {
	tests := []struct {
		name    string
		paths   []string
		wantErr bool
	}{
		{"empty", nil, false},
		{"single", []string{"/x/y"}, false},
		{"nested_rejected", []string{"/x/y", "/x/y/z"}, true},
		{"nested_reverse_order_rejected", []string{"/x/y/z", "/x/y"}, true},
		{"sibling_prefix_accepted", []string{"/x/y", "/x/yz"}, false},
		{"equal_rejected", []string{"/x/y", "/x/y"}, true},
		{"equal_after_clean_rejected", []string{"/x/y/", "/x/./y"}, true},
		{"root_contains_everything", []string{"/", "/etc/hosts"}, true},
		{"disjoint", []string{"/home/u/.vimrc", "/dots/vim/.vimrc", "/home/u/.zshrc"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := conflict.ValidatePaths(tt.paths)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrConflict))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_NamesBothPaths(t *testing.T) {
	set := types.TrackedSet{
		Root: "/dots",
		Entries: []types.TrackedEntry{
			{Scope: "cfg", Key: "config", OriginalPath: "/home/u/.config", BackupPath: "/dots/cfg/config"},
			{Scope: "nvim", Key: "nvim", OriginalPath: "/home/u/.config/nvim", BackupPath: "/dots/nvim/nvim"},
		},
	}

	err := conflict.Validate(set)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/home/u/.config")
	assert.Contains(t, err.Error(), "/home/u/.config/nvim")

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "/home/u/.config", details["first"])
	assert.Equal(t, "/home/u/.config/nvim", details["second"])
}

func TestValidate_BackupInsideOriginal(t *testing.T) {
	set := types.TrackedSet{
		Root: "/home/u/dots",
		Entries: []types.TrackedEntry{
			{Scope: "all", Key: "home", OriginalPath: "/home/u", BackupPath: "/home/u/dots/all/home"},
		},
	}

	assert.True(t, errors.IsErrorCode(conflict.Validate(set), errors.ErrConflict))
}
