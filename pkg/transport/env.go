package transport

import (
	"slices"
	"strings"
)

// localRepoEnv are the variables describing the repository of the calling
// process. They must not leak into a service program serving another
// repository.
var localRepoEnv = []string{
	"GIT_ALTERNATE_OBJECT_DIRECTORIES",
	"GIT_COMMON_DIR",
	"GIT_CONFIG",
	"GIT_CONFIG_PARAMETERS",
	"GIT_DIR",
	"GIT_GRAFT_FILE",
	"GIT_IMPLICIT_WORK_TREE",
	"GIT_INDEX_FILE",
	"GIT_NAMESPACE",
	"GIT_NO_REPLACE_OBJECTS",
	"GIT_OBJECT_DIRECTORY",
	"GIT_PREFIX",
	"GIT_SHALLOW_FILE",
	"GIT_WORK_TREE",
}

// LocalRepoEnv returns the names of the repository local variables removed
// by [FilterEnv].
func LocalRepoEnv() []string {
	return slices.Clone(localRepoEnv)
}

// FilterEnv returns env without the repository local variables.
func FilterEnv(env []string) []string {
	res := make([]string, 0, len(env))
	for _, kv := range env {
		name, _, _ := strings.Cut(kv, "=")
		if slices.Contains(localRepoEnv, name) {
			continue
		}
		res = append(res, kv)
	}
	return res
}

// lookupEnv returns the last value of name in env.
func lookupEnv(env []string, name string) (string, bool) {
	for i := len(env) - 1; i >= 0; i-- {
		k, v, ok := strings.Cut(env[i], "=")
		if ok && k == name {
			return v, true
		}
	}
	return "", false
}
