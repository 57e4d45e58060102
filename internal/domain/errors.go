package domain

import "errors"

// ErrNotFound é devolvido pelos repositórios quando a linha não existe.
var ErrNotFound = errors.New("not found")
