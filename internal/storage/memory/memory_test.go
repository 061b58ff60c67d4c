package memory

import (
	"testing"

	"expenses/internal/storage"
	"expenses/internal/storage/storagetest"
)

func TestMemoryStore(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		return New()
	})
}
