package platform

import (
	"bytes"
	"testing"
	"time"

	"github.com/hotend/aishare/internal/share"
	"github.com/stretchr/testify/assert"
)

func TestPlainToaster(t *testing.T) {
	var buf bytes.Buffer
	toaster := NewPlainToaster(&buf)

	toaster.Show(share.ToastSuccess, share.SuccessMessage, 3200*time.Millisecond)
	toaster.Show(share.ToastError, share.FailureMessage, 0)
	toaster.Wait()

	out := buf.String()
	assert.Contains(t, out, share.SuccessMessage)
	assert.Contains(t, out, share.FailureMessage)
}
