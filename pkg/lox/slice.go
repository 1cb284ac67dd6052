package lox

func MapErr[T any, R any](collection []T, iteratee func(item T) (R, error)) ([]R, error) {
	var err error

	result := make([]R, len(collection))

	for i, item := range collection {
		result[i], err = iteratee(item)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

func Map[T, R any](collection []T, iteratee func(item T) R) []R {
	result := make([]R, len(collection))

	for i, item := range collection {
		result[i] = iteratee(item)
	}

	return result
}

// FirstNonEmpty возвращает первое непустое значение по списку ключей.
func FirstNonEmpty[K comparable](lookup func(K) string, keys ...K) string {
	for _, k := range keys {
		if v := lookup(k); v != "" {
			return v
		}
	}

	return ""
}
