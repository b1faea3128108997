package errors

import "errors"

// ErrOptimisticLock conflito de lock otimista: o registro foi modificado por outra operação
var ErrOptimisticLock = errors.New("registro modificado por outra operação, recarregue e tente novamente")
