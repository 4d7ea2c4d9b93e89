package openapi

import (
	"reflect"
	"strings"

	"pullpush-docs/internal/models"
)

const (
	SearchCommentsPath    = "/reddit/search/comment/"
	SearchSubmissionsPath = "/reddit/search/submission/"
	CommentIDsPath        = "/reddit/comment/ids/"

	CommentSchema     = "Comment"
	SubmissionSchema  = "Submission"
	APIResponseSchema = "APIResponse"

	// MaxSearchSize is the largest page the official API serves.
	MaxSearchSize = 100
)

func stringSchema() *Schema  { return &Schema{Type: "string"} }
func integerSchema() *Schema { return &Schema{Type: "integer"} }

func objectSchema(props map[string]*Schema) *Schema {
	return &Schema{Type: "object", Properties: props}
}

// componentSchemas is the complete schema set of the published document.
func componentSchemas() map[string]*Schema {
	return map[string]*Schema{
		CommentSchema:    objectSchema(recordProperties(reflect.TypeOf(models.Comment{}))),
		SubmissionSchema: objectSchema(recordProperties(reflect.TypeOf(models.Submission{}))),
		APIResponseSchema: objectSchema(map[string]*Schema{
			"data": {
				Type: "array",
				Items: &Schema{OneOf: []*Schema{
					SchemaRef(CommentSchema),
					SchemaRef(SubmissionSchema),
					stringSchema(),
				}},
			},
			"metadata": {Type: "object"},
		}),
	}
}

// recordProperties maps the json fields of a flat record struct to their
// schema. Records only carry strings and integers.
func recordProperties(t reflect.Type) map[string]*Schema {
	props := make(map[string]*Schema, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if field.PkgPath != "" || name == "" || name == "-" {
			continue
		}

		switch field.Type.Kind() {
		case reflect.String:
			props[name] = stringSchema()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			props[name] = integerSchema()
		default:
			panic("openapi: unsupported record field " + t.Name() + "." + field.Name)
		}
	}
	return props
}

func queryParam(name string, required bool, schema *Schema, description string) *Parameter {
	return &Parameter{
		Name:        name,
		In:          "query",
		Required:    required,
		Schema:      schema,
		Description: description,
	}
}

func searchParameters() []*Parameter {
	maxSize := float64(MaxSearchSize)
	return []*Parameter{
		queryParam("q", true, stringSchema(), "Search term"),
		queryParam("subreddit", false, stringSchema(), "Restrict to a specific subreddit"),
		queryParam("author", false, stringSchema(), "Restrict to a specific author"),
		queryParam("size", false, &Schema{Type: "integer", Default: MaxSearchSize, Maximum: &maxSize}, "Number of results to return"),
		queryParam("sort", false, &Schema{Type: "string", Default: "desc", Enum: []interface{}{"asc", "desc"}}, "Sort order"),
		queryParam("after", false, stringSchema(), "Return results after this date"),
		queryParam("before", false, stringSchema(), "Return results before this date"),
	}
}

func getOperation(summary, operationID string, params []*Parameter) *PathItem {
	return &PathItem{
		Get: &Operation{
			Summary:     summary,
			OperationID: operationID,
			Parameters:  params,
			Responses: map[string]*Response{
				"200": {
					Description: "Successful Response",
					Content: map[string]*MediaType{
						"application/json": {Schema: SchemaRef(APIResponseSchema)},
					},
				},
			},
		},
	}
}

// documentedPaths is the complete path set of the published document.
func documentedPaths() Paths {
	return Paths{
		SearchCommentsPath:    getOperation("Search Comments", "search_comments", searchParameters()),
		SearchSubmissionsPath: getOperation("Search Submissions", "search_submissions", searchParameters()),
		CommentIDsPath: getOperation("Get Comment IDs", "get_comment_ids", []*Parameter{
			queryParam("link_id", true, stringSchema(), "ID of the submission"),
		}),
	}
}
