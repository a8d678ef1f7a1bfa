package agent_test

import (
	"context"
	"errors"
	"testing"

	"azure-devops-mcp/internal/agent"
)

type mockTool struct {
	name        string
	description string
	params      map[string]interface{}
	gotArgs     map[string]interface{}
}

func (m *mockTool) Name() string                       { return m.name }
func (m *mockTool) Description() string                { return m.description }
func (m *mockTool) Parameters() map[string]interface{} { return m.params }
func (m *mockTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	m.gotArgs = args
	return m.name + " done", nil
}

func TestToolRegistry(t *testing.T) {
	registry := agent.NewToolRegistry()

	tool1 := &mockTool{name: "zeta", description: "desc1", params: nil}
	tool2 := &mockTool{name: "alpha", description: "desc2"}

	registry.Register(tool1)
	registry.Register(tool2)

	t.Run("Get existing tool", func(t *testing.T) {
		got, ok := registry.Get("zeta")
		if !ok || got.Name() != "zeta" {
			t.Errorf("expected zeta to be found")
		}
	})

	t.Run("Get non-existing tool", func(t *testing.T) {
		_, ok := registry.Get("missing")
		if ok {
			t.Errorf("expected 'missing' tool to not be found")
		}
	})

	t.Run("List tools sorted", func(t *testing.T) {
		tools := registry.List()
		if len(tools) != 2 || tools[0].Name() != "alpha" || tools[1].Name() != "zeta" {
			t.Errorf("expected [alpha zeta], got %v", tools)
		}
	})

	t.Run("Definitions", func(t *testing.T) {
		defs := registry.Definitions()
		if len(defs) != 2 {
			t.Fatalf("expected 2 definitions, got %d", len(defs))
		}
		if defs[1].Name != "zeta" || defs[1].Description != "desc1" {
			t.Errorf("unexpected definition %+v", defs[1])
		}
	})

	t.Run("Call", func(t *testing.T) {
		out, err := registry.Call(context.Background(), "alpha", nil)
		if err != nil || out != "alpha done" {
			t.Errorf("unexpected result %v %v", out, err)
		}
		if tool2.gotArgs == nil {
			t.Errorf("expected non-nil args map")
		}
	})

	t.Run("Call unknown", func(t *testing.T) {
		_, err := registry.Call(context.Background(), "missing", nil)
		if !errors.Is(err, agent.ErrToolNotFound) {
			t.Errorf("expected ErrToolNotFound, got %v", err)
		}
	})
}

func TestDecodeArgs(t *testing.T) {
	type input struct {
		Project string `json:"project" validate:"required"`
		ID      int    `json:"id" validate:"gt=0"`
		Status  string `json:"status" validate:"omitempty,oneof=active all"`
	}

	tests := []struct {
		name    string
		params  map[string]interface{}
		wantErr bool
	}{
		{name: "Valid", params: map[string]interface{}{"project": "Demo", "id": float64(3)}},
		{name: "Missing Required", params: map[string]interface{}{"id": float64(3)}, wantErr: true},
		{name: "Wrong Type", params: map[string]interface{}{"project": "Demo", "id": "three"}, wantErr: true},
		{name: "Out Of Range", params: map[string]interface{}{"project": "Demo", "id": float64(0)}, wantErr: true},
		{name: "Bad Enum", params: map[string]interface{}{"project": "Demo", "id": float64(1), "status": "open"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in input
			err := agent.DecodeArgs(tt.params, &in)
			if tt.wantErr {
				if !errors.Is(err, agent.ErrInvalidArguments) {
					t.Errorf("expected ErrInvalidArguments, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if in.Project != "Demo" || in.ID != 3 {
				t.Errorf("unexpected decode %+v", in)
			}
		})
	}
}
