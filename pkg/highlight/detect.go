package highlight

import "github.com/go-enry/go-enry/v2"

// Detect guesses the language of a code block that had no fence info string.
// Returns a lowercase language name, or "" when detection is not confident
// enough to act on.
func Detect(content []byte) string {
	if len(content) == 0 {
		return ""
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	candidates := []string{
		"Go", "C", "Python", "Ruby", "Scheme", "Shell",
		"JavaScript", "HTML", "JSON", "YAML",
	}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return ""
}

func normalize(lang string) string {
	switch lang {
	case "Go":
		return "go"
	case "C":
		return "c"
	case "Python":
		return "python"
	case "Ruby":
		return "ruby"
	case "Scheme":
		return "scheme"
	case "Shell", "Bash":
		return "bash"
	case "JavaScript":
		return "javascript"
	case "HTML":
		return "html"
	case "JSON":
		return "json"
	case "YAML":
		return "yaml"
	}
	return ""
}
