// Package gitlab is a small read-only client for the GitLab snippets API.
//
// Two endpoints are used: the snippet index (/api/v4/snippets) and the raw
// content of a single snippet (/api/v4/snippets/{id}/raw). Both are
// authenticated with a personal access token sent in the PRIVATE-TOKEN
// header and bounded by DefaultTimeout.
//
// Every failure is one of two kinds. ErrConfigMissing means no token was
// configured and nothing was sent. Anything that went wrong after that
// (transport, timeout, non-2xx status, unreadable or malformed body) is a
// *FetchError, which matches ErrRemoteFetch under errors.Is.
package gitlab
