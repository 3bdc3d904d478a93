//go:build unit

package gitlab //nolint:testpackage // tests unexported functions

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	gl "gitlab.com/gitlab-org/api/client-go"
)

func responseWithStatus(status int) *gl.Response {
	//nolint:exhaustruct // only the status matters here
	return &gl.Response{Response: &http.Response{StatusCode: status}}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	errAPI := errors.New("api error")

	tests := []struct {
		name          string
		resp          *gl.Response
		err           error
		wantSuccess   bool
		wantUnprotect bool
	}{
		{name: "no error", resp: responseWithStatus(http.StatusCreated), err: nil, wantSuccess: true, wantUnprotect: true},
		{name: "2xx with decode error", resp: responseWithStatus(http.StatusNoContent), err: errAPI, wantSuccess: true, wantUnprotect: true},
		{name: "404", resp: responseWithStatus(http.StatusNotFound), err: errAPI, wantSuccess: false, wantUnprotect: true},
		{name: "500", resp: responseWithStatus(http.StatusInternalServerError), err: errAPI},
		{name: "no response", resp: nil, err: errAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			success := classifySuccess(tt.resp, tt.err)
			unprotect := classifyUnprotect(tt.resp, tt.err)

			// then
			assert.Equal(t, tt.wantSuccess, success == nil)
			assert.Equal(t, tt.wantUnprotect, unprotect == nil)
		})
	}
}
