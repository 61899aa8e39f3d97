package pqb

// DropTable builds a DROP TABLE statement for one or more tables.
type DropTable struct {
	tables   []TableName
	ifExists bool
	behavior DropBehavior
}

func NewDropTable() *DropTable { return &DropTable{} }

// Table adds a table name, optionally schema-qualified.
func (s *DropTable) Table(parts ...string) *DropTable {
	s.tables = append(s.tables, Table(parts...))
	return s
}

func (s *DropTable) IfExists() *DropTable {
	s.ifExists = true
	return s
}

func (s *DropTable) Cascade() *DropTable {
	s.behavior = DropCascade
	return s
}

func (s *DropTable) Restrict() *DropTable {
	s.behavior = DropRestrict
	return s
}

func writeDropTable(w SQLWriter, s *DropTable) {
	w.WriteSQL("DROP TABLE ")
	if s.ifExists {
		w.WriteSQL("IF EXISTS ")
	}
	for i, t := range s.tables {
		if i > 0 {
			w.WriteSQL(", ")
		}
		writeTableName(w, t)
	}
	writeDropBehavior(w, s.behavior)
}

func (s *DropTable) ToSQL() string {
	w := NewInlineWriter()
	writeDropTable(w, s)
	return w.String()
}

func (s *DropTable) ToValues() (string, []Value) {
	w := NewValuesWriter()
	writeDropTable(w, s)
	return w.Parts()
}

// DropSchema builds a DROP SCHEMA statement for one or more schemas.
type DropSchema struct {
	schemas  []SchemaName
	ifExists bool
	behavior DropBehavior
}

func NewDropSchema() *DropSchema { return &DropSchema{} }

// Schema adds a schema name, optionally database-qualified.
func (s *DropSchema) Schema(parts ...string) *DropSchema {
	s.schemas = append(s.schemas, Schema(parts...))
	return s
}

func (s *DropSchema) IfExists() *DropSchema {
	s.ifExists = true
	return s
}

func (s *DropSchema) Cascade() *DropSchema {
	s.behavior = DropCascade
	return s
}

func (s *DropSchema) Restrict() *DropSchema {
	s.behavior = DropRestrict
	return s
}

func writeDropSchema(w SQLWriter, s *DropSchema) {
	w.WriteSQL("DROP SCHEMA ")
	if s.ifExists {
		w.WriteSQL("IF EXISTS ")
	}
	for i, sch := range s.schemas {
		if i > 0 {
			w.WriteSQL(", ")
		}
		writeSchemaName(w, sch)
	}
	writeDropBehavior(w, s.behavior)
}

func (s *DropSchema) ToSQL() string {
	w := NewInlineWriter()
	writeDropSchema(w, s)
	return w.String()
}

func (s *DropSchema) ToValues() (string, []Value) {
	w := NewValuesWriter()
	writeDropSchema(w, s)
	return w.Parts()
}
