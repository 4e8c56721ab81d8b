package main

import "testing"

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantPath string
		wantHelp bool
		wantErr  bool
	}{
		{name: "no args"},
		{name: "help short", args: []string{"-h"}, wantHelp: true},
		{name: "help long", args: []string{"--help"}, wantHelp: true},
		{name: "config short", args: []string{"-c", "/tmp/m.yaml"}, wantPath: "/tmp/m.yaml"},
		{name: "config long", args: []string{"--config", "m.yaml"}, wantPath: "m.yaml"},
		{name: "config equals", args: []string{"--config=m.yaml"}, wantPath: "m.yaml"},
		{name: "config without path", args: []string{"--config"}, wantErr: true},
		{name: "unknown flag", args: []string{"--nope"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, help, err := parseArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseArgs(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if path != tt.wantPath || help != tt.wantHelp {
				t.Fatalf("parseArgs(%v) = (%q, %v), want (%q, %v)", tt.args, path, help, tt.wantPath, tt.wantHelp)
			}
		})
	}
}
