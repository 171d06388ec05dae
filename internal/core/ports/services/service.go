package services

// ServiceContainer holds instances of all the application services.
// It is what the handlers are built from.
type ServiceContainer struct {
	Calculator CalculatorSvc
	Poster     PosterSvcFacade
	Events     EventSubscriber
}
