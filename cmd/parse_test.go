package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetFlags() {
	flagSource = ""
	flagInput = ""
	flagBatch = ""
	flagJSON = false
	flagMarkdown = false
	flagPDF = false
	flagRaw = false
	flagSnapshot = false
}

func TestValidateFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		setup   func()
		wantErr bool
	}{
		{
			name:  "tracking id only",
			args:  []string{"176-12345675"},
			setup: func() {},
		},
		{
			name:    "no id and no batch",
			args:    nil,
			setup:   func() {},
			wantErr: true,
		},
		{
			name:  "batch without id",
			args:  nil,
			setup: func() { flagBatch = "ids.txt" },
		},
		{
			name:    "batch with id",
			args:    []string{"176-12345675"},
			setup:   func() { flagBatch = "ids.txt" },
			wantErr: true,
		},
		{
			name:    "batch with input file",
			args:    nil,
			setup:   func() { flagBatch = "ids.txt"; flagInput = "page.html" },
			wantErr: true,
		},
		{
			name:    "two output formats",
			args:    []string{"x"},
			setup:   func() { flagJSON = true; flagMarkdown = true },
			wantErr: true,
		},
		{
			name:  "single output format",
			args:  []string{"x"},
			setup: func() { flagPDF = true },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			tt.setup()
			err := validateFlags(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
