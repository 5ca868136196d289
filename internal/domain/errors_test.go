package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vladislavdragonenkov/cart/internal/domain"
)

func TestIsNotFound(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"product miss", domain.ErrProductNotFound, true},
		{"line miss", domain.ErrLineNotFound, true},
		{"wrapped product miss", fmt.Errorf("resolve: %w", domain.ErrProductNotFound), true},
		{"wrapped line miss", fmt.Errorf("index: %w", domain.ErrLineNotFound), true},
		{"binding error", domain.ErrCartModelBinding, false},
		{"price error", domain.ErrPriceUnsupported, false},
		{"other", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := domain.IsNotFound(tc.err); got != tc.want {
				t.Fatalf("IsNotFound(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestResolveBinding(t *testing.T) {
	lookups := map[string]domain.ProductLookup{
		"catalog": &stubLookup{},
	}

	binding, err := domain.ResolveBinding("catalog", lookups)
	if err != nil {
		t.Fatalf("resolve binding failed: %v", err)
	}
	if binding.Name != domain.DefaultCartName {
		t.Fatalf("expected default cart name, got %q", binding.Name)
	}
	if binding.Lookup == nil {
		t.Fatal("expected resolved lookup")
	}

	if _, err := domain.ResolveBinding("unknown", lookups); !errors.Is(err, domain.ErrCartModelBinding) {
		t.Fatalf("expected ErrCartModelBinding, got %v", err)
	}
	if _, err := domain.ResolveBinding("nil", map[string]domain.ProductLookup{"nil": nil}); !errors.Is(err, domain.ErrCartModelBinding) {
		t.Fatalf("expected ErrCartModelBinding for nil lookup, got %v", err)
	}
}
