package sections

import (
	"learning-center-backend/internal/models"
)

func extractSection(elem models.SectionElement) (models.Section, bool) {
	switch v := elem.Content.(type) {
	case models.Section:
		return v, true
	case *models.Section:
		if v != nil {
			return *v, true
		}
	}
	return models.Section{}, false
}

func sectionContent(elem models.SectionElement) map[string]interface{} {
	if contentMap, ok := elem.Content.(map[string]interface{}); ok {
		return contentMap
	}
	return map[string]interface{}{}
}

func getString(content map[string]interface{}, key string) string {
	if content == nil {
		return ""
	}
	if value, ok := content[key]; ok {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return ""
}
