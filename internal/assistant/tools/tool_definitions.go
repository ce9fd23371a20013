package tools

// Definitions returns the tool schemas in OpenAI function-calling format. The
// chat flow never executes these autonomously; the list exists for agents that
// call the tool endpoint directly.
func Definitions() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"type": "function",
			"function": map[string]interface{}{
				"name":        string(AddTask),
				"description": "Create a new task for the authenticated user.",
				"parameters": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"title": map[string]interface{}{
							"type":        "string",
							"description": "Task title (1-255 characters)",
						},
						"description": map[string]interface{}{
							"type":        "string",
							"description": "Optional task description",
						},
					},
					"required": []string{"title"},
				},
			},
		},
		{
			"type": "function",
			"function": map[string]interface{}{
				"name":        string(ListTasks),
				"description": "List all tasks owned by the authenticated user.",
				"parameters": map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
		},
		{
			"type": "function",
			"function": map[string]interface{}{
				"name":        string(CompleteTask),
				"description": "Mark one of the user's tasks as completed.",
				"parameters": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"task_id": map[string]interface{}{
							"type":        "string",
							"description": "UUID of the task to complete",
						},
					},
					"required": []string{"task_id"},
				},
			},
		},
		{
			"type": "function",
			"function": map[string]interface{}{
				"name":        string(UpdateTask),
				"description": "Update the title, description or completion flag of a task.",
				"parameters": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"task_id": map[string]interface{}{
							"type":        "string",
							"description": "UUID of the task to update",
						},
						"title":       map[string]interface{}{"type": "string"},
						"description": map[string]interface{}{"type": "string"},
						"completed":   map[string]interface{}{"type": "boolean"},
					},
					"required": []string{"task_id"},
				},
			},
		},
		{
			"type": "function",
			"function": map[string]interface{}{
				"name":        string(DeleteTask),
				"description": "Delete one of the user's tasks.",
				"parameters": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"task_id": map[string]interface{}{
							"type":        "string",
							"description": "UUID of the task to delete",
						},
					},
					"required": []string{"task_id"},
				},
			},
		},
	}
}
