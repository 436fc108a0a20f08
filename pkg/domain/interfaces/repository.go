package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Assessment() AssessmentRepository
	Mitigation() MitigationRepository
	Factor() FactorRepository

	// Close releases underlying client resources
	Close() error
}
