package helpers

import (
	"fmt"

	"github.com/google/uuid"
)

func RandomString(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString()[:8])
}
