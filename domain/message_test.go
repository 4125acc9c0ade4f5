package domain

import (
	"supachat/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	req := require.New(t)

	for _, role := range Roles {
		parsed, err := ParseRole(string(role))
		req.NoError(err)
		req.Equal(role, parsed)
	}

	_, err := ParseRole("moderator")
	req.ErrorIs(err, errors.ErrUnknownRole)
}
