package cleanup_test

import (
	"errors"
	"testing"

	"github.com/limbo/goalkeeper/pkg/cleanup"
	"github.com/stretchr/testify/assert"
)

func TestCleanUpOrder(t *testing.T) {
	var order []string
	for _, name := range []string{"db", "server", "broken"} {
		cleanup.Register(&cleanup.Job{
			Name: name,
			F: func() error {
				order = append(order, name)
				if name == "broken" {
					return errors.New("failed")
				}
				return nil
			},
		})
	}
	cleanup.CleanUp()
	assert.Equal(t, []string{"broken", "server", "db"}, order)

	cleanup.CleanUp()
	assert.Len(t, order, 3)
}
