package polaris

// Endpoint pairs an HTTP method with a path template. Templates use %s
// placeholders filled with path-escaped arguments.
type Endpoint struct {
	Method string
	Path   string
}

// EndpointRegistry holds all Polaris API endpoints.
type EndpointRegistry struct {
	Tables   TablesEndpoints
	Schemas  Endpoint
	Projects Endpoint
	Query    Endpoint
	Events   Endpoint
}

type TablesEndpoints struct {
	List        Endpoint
	Create      Endpoint
	Get         Endpoint
	Delete      Endpoint
	EnablePush  Endpoint
	DisablePush Endpoint
}

// Endpoints is the registry of all API endpoints, relative to /v1.
var Endpoints = EndpointRegistry{
	Tables: TablesEndpoints{
		List:   Endpoint{Method: "GET", Path: "/tables"},
		Create: Endpoint{Method: "POST", Path: "/tables"},
		Get:    Endpoint{Method: "GET", Path: "/tables/%s"},
		Delete: Endpoint{Method: "DELETE", Path: "/tables/%s"},
		// Internal API toggling push streaming for a table.
		EnablePush:  Endpoint{Method: "POST", Path: "/tables/%s/ingestion/streaming"},
		DisablePush: Endpoint{Method: "DELETE", Path: "/tables/%s/ingestion/streaming"},
	},
	Schemas:  Endpoint{Method: "GET", Path: "/schemas"},
	Projects: Endpoint{Method: "GET", Path: "/projects"},
	Query:    Endpoint{Method: "POST", Path: "/projects/%s/query/sql"},
	Events:   Endpoint{Method: "POST", Path: "/events/%s"},
}
