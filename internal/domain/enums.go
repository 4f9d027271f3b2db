package domain

// Operation is the kind of mutation recorded in the revision trail.
type Operation string

const (
	OperationCreate  Operation = "create"
	OperationUpdate  Operation = "update"
	OperationDestroy Operation = "destroy"
)

func (o Operation) String() string { return string(o) }

func (o Operation) IsValid() bool {
	switch o {
	case OperationCreate, OperationUpdate, OperationDestroy:
		return true
	}
	return false
}

// DiffKind tags a single field diff.
type DiffKind string

const (
	DiffAdded   DiffKind = "added"
	DiffRemoved DiffKind = "removed"
	DiffChanged DiffKind = "changed"
)

func (k DiffKind) String() string { return string(k) }

func (k DiffKind) IsValid() bool {
	switch k {
	case DiffAdded, DiffRemoved, DiffChanged:
		return true
	}
	return false
}

// ContractType is the employment contract offered by an opportunity.
type ContractType string

const (
	ContractPermanent      ContractType = "permanent"
	ContractFixedTerm      ContractType = "fixed_term"
	ContractInternship     ContractType = "internship"
	ContractFreelance      ContractType = "freelance"
	ContractApprenticeship ContractType = "apprenticeship"
)

func (c ContractType) String() string { return string(c) }

func (c ContractType) IsValid() bool {
	switch c {
	case ContractPermanent, ContractFixedTerm, ContractInternship,
		ContractFreelance, ContractApprenticeship:
		return true
	}
	return false
}
