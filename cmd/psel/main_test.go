package main

import (
	"reflect"
	"testing"
)

func TestExtractFlagsAndCommands(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantFlags    []string
		wantCommands []string
	}{
		{
			name:         "no flags or commands",
			args:         []string{},
			wantFlags:    []string{},
			wantCommands: []string{},
		},
		{
			name:         "only commands",
			args:         []string{"roots", "list"},
			wantFlags:    []string{},
			wantCommands: []string{"roots", "list"},
		},
		{
			name:         "boolean flags",
			args:         []string{"--help", "-h", "--count"},
			wantFlags:    []string{"--help", "-h", "--count"},
			wantCommands: []string{},
		},
		{
			name:         "min-score with space-separated value",
			args:         []string{"--min-score", "40"},
			wantFlags:    []string{"--min-score=40"},
			wantCommands: []string{},
		},
		{
			name:         "min-score with equals",
			args:         []string{"--min-score=70"},
			wantFlags:    []string{"--min-score=70"},
			wantCommands: []string{},
		},
		{
			name:         "roots with space-separated value",
			args:         []string{"--roots", "/a,/b"},
			wantFlags:    []string{"--roots=/a,/b"},
			wantCommands: []string{},
		},
		{
			name:         "pager flag",
			args:         []string{"--pager", "less"},
			wantFlags:    []string{"--pager=less"},
			wantCommands: []string{},
		},
		{
			name:         "value flag without value stays bare",
			args:         []string{"--min-score"},
			wantFlags:    []string{"--min-score"},
			wantCommands: []string{},
		},
		{
			name:         "mixed: command, query and flags",
			args:         []string{"pick", "alice", "--min-score", "50", "--name-only"},
			wantFlags:    []string{"--min-score=50", "--name-only"},
			wantCommands: []string{"pick", "alice"},
		},
		{
			name:         "boolean flag does not swallow following query",
			args:         []string{"pick", "--full-path", "alice"},
			wantFlags:    []string{"--full-path"},
			wantCommands: []string{"pick", "alice"},
		},
		{
			name:         "value flag followed by another flag stays bare",
			args:         []string{"--pager", "--no-color"},
			wantFlags:    []string{"--pager", "--no-color"},
			wantCommands: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotFlags, gotCommands := extractFlagsAndCommands(tt.args)

			if !reflect.DeepEqual(gotFlags, tt.wantFlags) {
				t.Errorf("extractFlagsAndCommands() flags = %v, want %v", gotFlags, tt.wantFlags)
			}
			if !reflect.DeepEqual(gotCommands, tt.wantCommands) {
				t.Errorf("extractFlagsAndCommands() commands = %v, want %v", gotCommands, tt.wantCommands)
			}
		})
	}
}
