package gitlab

import (
	"net/http"

	logger "github.com/sirupsen/logrus"
	gl "gitlab.com/gitlab-org/api/client-go"
)

// statusOf returns the HTTP status of resp, or zero when no response arrived.
func statusOf(resp *gl.Response) int {
	if resp == nil || resp.Response == nil {
		return 0
	}
	return resp.StatusCode
}

// classifySuccess drops errors that came with a 2xx status. Some write endpoints
// answer 204 No Content where a body is expected, which surfaces as a decode error.
func classifySuccess(resp *gl.Response, err error) error {
	if err == nil {
		return nil
	}
	if status := statusOf(resp); status >= http.StatusOK && status < http.StatusMultipleChoices {
		logger.Debugf("Treating %d response as success despite error: %v", status, err)
		return nil
	}
	return err
}

// classifyUnprotect also accepts 404, which is how an unprotected branch answers.
func classifyUnprotect(resp *gl.Response, err error) error {
	if err != nil && statusOf(resp) == http.StatusNotFound {
		logger.Debug("Branch was not protected")
		return nil
	}
	return classifySuccess(resp, err)
}
