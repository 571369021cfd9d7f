package parametly

import "reflect"

// TableModel is the generic tabular result interface understood by downstream
// report engines.
type TableModel interface {
	ColumnCount() int
	ColumnName(column int) string
	RowCount() int
	ValueAt(row, column int) interface{}
}

// ResultSet is a column addressable row set produced by a data source.
type ResultSet interface {
	ColumnNames() []string
	RowCount() int
	ValueAt(row, column int) interface{}
}

var tableModelType = reflect.TypeOf((*TableModel)(nil)).Elem()

// resultSetModel adapts a ResultSet to the TableModel interface.
type resultSetModel struct {
	source ResultSet
}

// NewTableModel wraps a result set with a table model adapter.
func NewTableModel(source ResultSet) TableModel {
	return &resultSetModel{source: source}
}

func (m *resultSetModel) ColumnCount() int {
	return len(m.source.ColumnNames())
}

func (m *resultSetModel) ColumnName(column int) string {
	names := m.source.ColumnNames()
	if column < 0 || column >= len(names) {
		return ""
	}
	return names[column]
}

func (m *resultSetModel) RowCount() int {
	return m.source.RowCount()
}

func (m *resultSetModel) ValueAt(row, column int) interface{} {
	return m.source.ValueAt(row, column)
}
