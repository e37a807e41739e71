package testmo

import (
	"net/url"
	"strconv"
	"strings"
)

// Request is a cheap immutable description of a GET against the API:
// an endpoint below /api/v1 plus query parameters. Modifiers copy, so
// a request can serve as a template the way pagination reuses one.
type Request struct {
	Endpoint string
	Params   url.Values
}

func NewRequest(endpoint string) Request {
	return Request{Endpoint: strings.Trim(endpoint, "/")}
}

func (r Request) WithParam(key, value string) Request {
	params := url.Values{}
	for k, vs := range r.Params {
		params[k] = append([]string(nil), vs...)
	}
	params.Set(key, value)
	r.Params = params
	return r
}

// Extend appends path segments to the endpoint.
func (r Request) Extend(segments ...string) Request {
	parts := []string{r.Endpoint}
	for _, seg := range segments {
		parts = append(parts, strings.Trim(seg, "/"))
	}
	r.Endpoint = strings.Join(parts, "/")
	return r
}

func (r Request) String() string {
	if len(r.Params) == 0 {
		return r.Endpoint
	}
	return r.Endpoint + "?" + r.Params.Encode()
}

// Endpoint builders, mirroring the API layout:
//
//	/api/v1/projects
//	/api/v1/projects/{project_id}/runs
//	/api/v1/runs/{run_id}/results

func ProjectsRequest() Request {
	return NewRequest("projects")
}

func ProjectRequest(projectID int64) Request {
	return ProjectsRequest().Extend(strconv.FormatInt(projectID, 10))
}

func ProjectRunsRequest(projectID int64) Request {
	return ProjectRequest(projectID).Extend("runs")
}

func RunRequest(runID int64) Request {
	return NewRequest("runs").Extend(strconv.FormatInt(runID, 10))
}

func RunResultsRequest(runID int64) Request {
	return RunRequest(runID).Extend("results")
}

func UserRequest() Request {
	return NewRequest("user")
}
