package utility

// Contains kiểm tra một phần tử có trong slice hay không.
func Contains[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

// Distinct trả về các phần tử duy nhất của slice, giữ thứ tự xuất hiện đầu tiên.
func Distinct[T comparable](slice []T) []T {
	seen := make(map[T]bool, len(slice))
	result := make([]T, 0, len(slice))
	for _, v := range slice {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
