package instrument

import (
	"context"
	"testing"
)

func TestNew(t *testing.T) {

	t.Run("DisabledReturnsNoop", func(t *testing.T) {

		// Act
		ins, err := New(context.Background(), &Config{Enabled: false, ServiceName: "test"})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ins == nil {
			t.Fatal("expected an instrumentation instance")
		}
		if err := ins.Shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown: %v", err)
		}
	})

	t.Run("NilConfigReturnsNoop", func(t *testing.T) {

		// Act
		ins, err := New(context.Background(), nil)

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ins == nil {
			t.Fatal("expected an instrumentation instance")
		}
	})
}
