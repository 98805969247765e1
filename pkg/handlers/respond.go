package handlers

// Envelope is the uniform JSON response shape of every website endpoint:
// always a success flag, a data payload on success, a message on failure.
type Envelope map[string]interface{}

func success(data interface{}) Envelope {
	return Envelope{
		"success": true,
		"data":    data,
	}
}

func failure(message string) Envelope {
	return Envelope{
		"success": false,
		"message": message,
	}
}
