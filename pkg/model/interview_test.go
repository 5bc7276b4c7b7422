package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInterviewReq_Validate(t *testing.T) {
	valid := GenerateInterviewReq{
		Type:      "technical",
		Role:      "Backend Engineer",
		Level:     "Senior",
		Techstack: "Go, Postgres",
		Amount:    "5",
	}

	t.Run("valid", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	tests := []struct {
		name      string
		mutate    func(*GenerateInterviewReq)
		wantField string
	}{
		{"missing type", func(r *GenerateInterviewReq) { r.Type = "" }, "type"},
		{"missing role", func(r *GenerateInterviewReq) { r.Role = "" }, "role"},
		{"missing level", func(r *GenerateInterviewReq) { r.Level = "" }, "level"},
		{"missing techstack", func(r *GenerateInterviewReq) { r.Techstack = "" }, "techstack"},
		{"missing amount", func(r *GenerateInterviewReq) { r.Amount = "" }, "amount"},
		{"zero amount", func(r *GenerateInterviewReq) { r.Amount = "0" }, "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.wantField, missing.Field)
		})
	}

	t.Run("first missing field wins in body order", func(t *testing.T) {
		req := valid
		req.Type = ""
		req.Level = ""
		err := req.Validate()
		var missing *MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "type", missing.Field)
	})
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	type body struct {
		Amount Amount `json:"amount"`
	}

	tests := []struct {
		name    string
		in      string
		want    Amount
		wantErr bool
	}{
		{name: "number", in: `{"amount": 5}`, want: "5"},
		{name: "numeric string", in: `{"amount": "5"}`, want: "5"},
		{name: "padded string", in: `{"amount": " 7 "}`, want: "7"},
		{name: "zero number", in: `{"amount": 0}`, want: "0"},
		{name: "absent", in: `{}`, want: ""},
		{name: "object", in: `{"amount": {}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b body
			err := json.Unmarshal([]byte(tt.in), &b)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Amount)
		})
	}
}

func TestSplitTechstack(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "trims and preserves order", in: "React, Node.js ,SQL", want: []string{"React", "Node.js", "SQL"}},
		{name: "single element", in: "Go", want: []string{"Go"}},
		{name: "drops empty elements", in: "Go,,Postgres,", want: []string{"Go", "Postgres"}},
		{name: "whitespace only element dropped", in: "Go, ,Postgres", want: []string{"Go", "Postgres"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTechstack(tt.in))
		})
	}
}

func TestRandomCover_FromCatalog(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		seen[RandomCover()] = true
	}
	for cover := range seen {
		assert.Contains(t, interviewCovers, cover)
	}
}
