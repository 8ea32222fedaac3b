package util

// RemoveDuplicateStrings returns the distinct non-empty values of strings in
// first-seen order, skipping anything listed in ignoreList.
func RemoveDuplicateStrings(strings []string, ignoreList []string) []string {
	presentStrings := make(map[string]bool)
	var list []string

	for _, ignoreString := range ignoreList {
		presentStrings[ignoreString] = true
	}

	for _, item := range strings {
		if !presentStrings[item] && item != "" {
			presentStrings[item] = true
			list = append(list, item)
		}
	}
	return list
}
