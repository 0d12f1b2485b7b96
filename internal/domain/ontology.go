package domain

// Relationship represents a semantic relationship between ontology concepts.
type Relationship struct {
	Type   string
	Target string
}

// OntologyNode is a node in the Python programming ontology.
type OntologyNode struct {
	Name          string
	Description   string
	Difficulty    string
	Examples      []string
	Relationships []Relationship
	Children      []*OntologyNode
}

// AddChild appends a child concept.
func (n *OntologyNode) AddChild(child *OntologyNode) {
	n.Children = append(n.Children, child)
}

// AddRelationship records a semantic relation to another concept.
func (n *OntologyNode) AddRelationship(relation, target string) {
	n.Relationships = append(n.Relationships, Relationship{Type: relation, Target: target})
}
