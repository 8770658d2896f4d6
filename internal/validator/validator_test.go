package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type submission struct {
	Title       string `binding:"required,notblank"`
	RequestType string `binding:"required,request_type"`
}

func TestRegister(t *testing.T) {
	Register()

	tests := []struct {
		name    string
		input   submission
		wantErr bool
	}{
		{name: "valid", input: submission{Title: "Book room", RequestType: "room_booking"}},
		{name: "other_type", input: submission{Title: "Misc", RequestType: "other"}},
		{name: "unknown_type", input: submission{Title: "Misc", RequestType: "teleport"}, wantErr: true},
		{name: "uppercase_type", input: submission{Title: "Misc", RequestType: "ROOM_BOOKING"}, wantErr: true},
		{name: "blank_title", input: submission{Title: "   ", RequestType: "other"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}
