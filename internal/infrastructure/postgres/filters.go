package postgres

import (
	"fmt"
	"strings"
)

// filterSet acumula condiciones WHERE parametrizadas con numeración $n
// contigua. Sustituye la concatenación ad-hoc de fragmentos SQL: cada condición
// se declara completa con sus argumentos y el SQL final siempre queda
// parametrizado.
type filterSet struct {
	conds []string
	args  []any
}

// Add agrega una condición. expr debe usar el verbo %s una vez por argumento;
// se reemplaza por el placeholder de posición real ($1, $2, ...).
func (f *filterSet) Add(expr string, args ...any) {
	placeholders := make([]any, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", len(f.args)+i+1)
	}
	f.conds = append(f.conds, fmt.Sprintf(expr, placeholders...))
	f.args = append(f.args, args...)
}

// AddRaw agrega una condición sin argumentos (ej. flags booleanos de columnas).
func (f *filterSet) AddRaw(expr string) {
	f.conds = append(f.conds, expr)
}

// Where devuelve la cláusula "WHERE c1 AND c2 ..." y sus argumentos en orden.
// Sin condiciones devuelve cadena vacía.
func (f *filterSet) Where() (string, []any) {
	if len(f.conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(f.conds, " AND "), f.args
}
