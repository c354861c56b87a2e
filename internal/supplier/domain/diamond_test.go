package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeCode(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		wantCode string
		wantOK   bool
	}{
		{"Success_BrilliantRound", "Brilliant Round", "ROUND", true},
		{"Success_Round", "Round", "ROUND", true},
		{"Success_Oval", "Oval", "OVAL", true},
		{"Success_Princess", "Princess", "PRINCESS", true},
		{"Success_Heart", "Heart", "HEART", true},
		{"Error_UnknownLabel", "Trillion", "", false},
		{"Error_CaseSensitive", "round", "", false},
		{"Error_EmptyLabel", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := ShapeCode(tt.label)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
