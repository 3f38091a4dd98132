package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/alexberriman/nextlens/pkg/nextjs"
)

func TestJSONResponse_Success(t *testing.T) {
	resp := JSONResponse{
		Success: true,
		Data:    map[string]string{"key": "value"},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var decoded JSONResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if !decoded.Success {
		t.Error("Expected Success to be true")
	}
	if decoded.Error != "" {
		t.Error("Expected Error to be empty for success response")
	}
}

func TestJSONResponse_Error(t *testing.T) {
	resp := JSONResponse{
		Success: false,
		Error:   "something went wrong",
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var decoded JSONResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if decoded.Success {
		t.Error("Expected Success to be false")
	}
	if decoded.Error != "something went wrong" {
		t.Errorf("Error mismatch: got %q", decoded.Error)
	}
}

func TestRoutesOutput_JSON(t *testing.T) {
	output := RoutesOutput{
		Routes: []nextjs.PageRouteInfo{
			{RoutePath: "/", FileType: nextjs.PageRouteTypePage},
			{RoutePath: "/api/users", FileType: nextjs.PageRouteTypeAPI, IsAPIRoute: true},
		},
		TotalRoutes: 2,
		TotalAPI:    1,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	s := string(data)
	if !strings.Contains(s, `"total_routes": 2`) {
		t.Errorf("missing total_routes in output: %s", s)
	}
	if !strings.Contains(s, `"/api/users"`) {
		t.Errorf("missing api route in output: %s", s)
	}
	if strings.Contains(s, `"special_files"`) {
		t.Errorf("special_files should be omitted when empty: %s", s)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{512, "512 B"},
		{2048, "2.00 KB"},
		{1536, "1.50 KB"},
		{1048576, "1.00 MB"},
	}

	for _, tt := range tests {
		if got := formatBytes(tt.bytes); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
