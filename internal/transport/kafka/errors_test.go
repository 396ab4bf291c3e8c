package kafka

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermanent(t *testing.T) {
	t.Parallel()

	require.NoError(t, Permanent(nil))

	cause := errors.New("bad payload")
	err := fmt.Errorf("publish: %w", Permanent(cause))

	require.True(t, IsPermanent(err))
	require.ErrorIs(t, err, cause)
	require.Equal(t, "publish: kafka: permanent failure: bad payload", err.Error())

	require.False(t, IsPermanent(cause))
	require.False(t, IsPermanent(nil))
	require.Equal(t, "kafka: permanent failure", PermanentError{}.Error())
}
