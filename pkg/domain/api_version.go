package domain

import (
	dErrors "kontrola/pkg/domain-errors"
)

// APIVersion names a mounted API generation, such as "v1".
type APIVersion string

const APIVersionV1 APIVersion = "v1"

// SupportedVersions lists the mounted versions, oldest first.
var SupportedVersions = []APIVersion{APIVersionV1}

// ParseAPIVersion accepts only mounted versions.
func ParseAPIVersion(s string) (APIVersion, error) {
	for _, v := range SupportedVersions {
		if string(v) == s {
			return v, nil
		}
	}
	return "", dErrors.New(dErrors.CodeNotFound, "unsupported api version: "+s)
}

func (v APIVersion) String() string {
	return string(v)
}

// Prefix is the route prefix the version is served under.
func (v APIVersion) Prefix() string {
	return "/api/" + string(v)
}
