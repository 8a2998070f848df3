package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// buildUpdateExpression constructs the SET expression for a partial update.
// The updatedAt stamp is always included, even when fields is empty. Every
// attribute name is bound through a #fN placeholder and every value through
// a :vN placeholder, so reserved words (status, date, location, ...) and
// delimiter characters in values can never collide with the expression
// grammar. Field names are processed in sorted order so the expression is
// deterministic for a given field set.
func buildUpdateExpression(fields map[string]any, updatedAt string) (string, map[string]string, map[string]types.AttributeValue, error) {
	names := map[string]string{
		"#updatedAt": "updatedAt",
	}
	values := map[string]types.AttributeValue{
		":updatedAt": &types.AttributeValueMemberS{Value: updatedAt},
	}
	clauses := []string{"#updatedAt = :updatedAt"}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i, k := range keys {
		av, err := attributevalue.Marshal(fields[k])
		if err != nil {
			return "", nil, nil, fmt.Errorf("marshal %s: %w", k, err)
		}
		nameKey := fmt.Sprintf("#f%d", i)
		valueKey := fmt.Sprintf(":v%d", i)
		names[nameKey] = k
		values[valueKey] = av
		clauses = append(clauses, fmt.Sprintf("%s = %s", nameKey, valueKey))
	}

	return "SET " + strings.Join(clauses, ", "), names, values, nil
}
