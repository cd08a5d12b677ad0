/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validate

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/vsspr/internal/logger"
	"bennypowers.dev/vsspr/internal/mapfs"
	"bennypowers.dev/vsspr/testutil"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func project(t *testing.T, config string) *mapfs.MapFileSystem {
	t.Helper()
	mfs := mapfs.New()
	if config != "" {
		mfs.AddFile("/project/.config/vsspr.yaml", config, 0644)
	}
	testutil.AddPNG(t, mfs, "/project/data/ship.png", 4, 4)
	testutil.AddPNG(t, mfs, "/project/data/f1.png", 4, 4)
	mfs.AddFile("/project/sprites/ship.spr", "ship.png 0\n\n0 0\n", 0644)
	mfs.AddFile("/project/sprites/fx/boom.ani", "boom.ani\n1 50\nf1.png\n", 0644)
	mfs.AddFile("/project/sprites/fx/short.ani", "short.ani\n3 50\nf1.png\n", 0644)
	mfs.AddFile("/project/sprites/readme.txt", "not a sprite", 0644)
	return mfs
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		config   string
		args     []string
		opts     options
		wantErr  bool
		contains []string
	}{
		{
			name:     "explicit files",
			config:   "assetRoot: data\n",
			args:     []string{"sprites/ship.spr", "sprites/fx/boom.ani"},
			contains: []string{"static, 1 frames, 0 missing", "animation, 1 frames, 0 missing", "All files valid."},
		},
		{
			name:     "glob argument",
			config:   "assetRoot: data\n",
			args:     []string{"sprites/**/*.{spr,ani}"},
			contains: []string{"short.ani", "boom.ani", "ship.spr", "All files valid."},
		},
		{
			name:     "files from config",
			config:   "assetRoot: data\nfiles:\n  - sprites/fx/*.ani\n",
			contains: []string{"boom.ani", "short.ani"},
		},
		{
			name:    "warnings fail in strict mode",
			config:  "assetRoot: data\n",
			args:    []string{"sprites/fx/short.ani"},
			opts:    options{strict: true},
			wantErr: true,
		},
		{
			name:    "strict from config",
			config:  "assetRoot: data\nstrict: true\n",
			args:    []string{"sprites/fx/short.ani"},
			wantErr: true,
		},
		{
			name:    "missing file",
			config:  "assetRoot: data\n",
			args:    []string{"sprites/nope.spr"},
			wantErr: true,
		},
		{
			name:    "not a sprite",
			args:    []string{"sprites/readme.txt"},
			wantErr: true,
		},
		{
			name:    "nothing to validate",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			err := validate(t.Context(), &out, &errOut, project(t, tt.config), "/project", tt.args, tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err, errOut.String())
			}
			for _, want := range tt.contains {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestValidate_WarningsReported(t *testing.T) {
	var out, errOut bytes.Buffer
	err := validate(t.Context(), &out, &errOut, project(t, "assetRoot: data\n"), "/project",
		[]string{"sprites/fx/short.ani"}, options{})
	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "frame-count-mismatch")
}

func TestValidate_Quiet(t *testing.T) {
	var out, errOut bytes.Buffer
	err := validate(t.Context(), &out, &errOut, project(t, "assetRoot: data\n"), "/project",
		[]string{"sprites/ship.spr"}, options{quiet: true})
	require.NoError(t, err)
	assert.Empty(t, out.String())
}
