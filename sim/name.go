package sim

import (
	"strconv"
	"strings"
)

// NameMustBeValid panics if the name does not follow the naming convention.
// A name is a dot-separated hierarchy such as "Sim.Damon[0]". Every element
// must be non-empty, start with a capital letter, and must not contain
// underscores, quotes or dashes. Series elements use square-bracket indices.
func NameMustBeValid(name string) {
	for _, token := range strings.Split(name, ".") {
		if msg := checkNameToken(token); msg != "" {
			panic("Name " + name + " is not valid: " + msg)
		}
	}
}

func checkNameToken(token string) string {
	elem, rest, _ := strings.Cut(token, "[")
	if elem == "" {
		return "name element must not be empty"
	}

	if strings.ContainsAny(elem, "_\"'-]") {
		return "name element must not contain _, \", ', - or ]"
	}

	if elem[0] < 'A' || elem[0] > 'Z' {
		return "name element must start with a capital letter"
	}

	if rest != "" {
		return checkIndices("[" + rest)
	}

	return ""
}

func checkIndices(s string) string {
	for s != "" {
		if s[0] != '[' {
			return "name bracket must match"
		}

		end := strings.IndexByte(s, ']')
		if end < 0 {
			return "name bracket must match"
		}

		if _, err := strconv.Atoi(s[1:end]); err != nil {
			return "name index must be integer"
		}

		s = s[end+1:]
	}

	return ""
}

// BuildName builds a name from a parent name and an element name.
func BuildName(parentName, elementName string) string {
	if parentName == "" {
		return elementName
	}

	return parentName + "." + elementName
}

// BuildNameWithIndex builds a name from a parent name, an element name and an
// index.
func BuildNameWithIndex(parentName, elementName string, index int) string {
	return BuildName(parentName, elementName+"["+strconv.Itoa(index)+"]")
}
