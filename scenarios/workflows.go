package scenarios

import (
	"github.com/synthia-dev/datasetforge/builders"
	"github.com/synthia-dev/datasetforge/types"
)

// WorkflowExamples produces multi-tool investigation conversations where the
// assistant chains several invocations before concluding.
func WorkflowExamples() ([]types.Example, error) {
	authDebug, err := workflowAuthDebug()
	if err != nil {
		return nil, err
	}
	slowEndpoint, err := workflowSlowEndpoint()
	if err != nil {
		return nil, err
	}
	return []types.Example{authDebug, slowEndpoint}, nil
}

// workflowAuthDebug chains log inspection, code reading, and an env check to
// root-cause a JWT verification failure.
func workflowAuthDebug() (types.Example, error) {
	readLog, err := builders.Call("call_1", "read", map[string]any{
		"file_path": "/var/log/app/error.log",
		"limit":     30,
	})
	if err != nil {
		return types.Example{}, err
	}
	readMiddleware, err := builders.Call("call_2", "read", map[string]any{
		"file_path": "/app/middleware/auth.js",
	})
	if err != nil {
		return types.Example{}, err
	}
	grepEnv, err := builders.Call("call_3", "bash", map[string]any{
		"command":     "grep JWT_SECRET /app/.env",
		"description": "Check JWT_SECRET in .env",
	})
	if err != nil {
		return types.Example{}, err
	}

	return builders.NewConversation().
		User("Debug the authentication error").
		AssistantCall("I'll help debug this. First, let me check the error logs.", readLog).
		ToolResult("call_1", "read", "[2024-01-15 10:23:45] ERROR: JWT verification failed\n[2024-01-15 10:23:45] ERROR: JsonWebTokenError: invalid signature\n[2024-01-15 10:24:12] ERROR: Retry attempt 1 failed\n[2024-01-15 10:24:22] ERROR: Retry attempt 2 failed").
		AssistantCall("The error is JWT signature verification failing. Let me check the auth middleware.", readMiddleware).
		ToolResult("call_2", "read", "const jwt = require('jsonwebtoken');\n\nfunction authenticate(req, res, next) {\n  const token = req.header('Authorization')?.replace('Bearer ', '');\n  try {\n    const decoded = jwt.verify(token, process.env.JWT_SECRET);\n    req.user = decoded;\n    next();\n  } catch (err) {\n    res.status(401).json({ error: 'Invalid token' });\n  }\n}").
		AssistantCall("Now let me check if JWT_SECRET is set in the environment.", grepEnv).
		ToolResult("call_3", "bash", "JWT_SECRET=newsecret123").
		Assistant("Found the issue! The JWT_SECRET was recently changed in the .env file. Existing tokens were signed with the old secret and can't be verified with the new one. Users need to log in again to get new tokens signed with the updated secret.").
		Build("workflows")
}

// workflowSlowEndpoint chains a grep for the handler, a read of the query,
// and an explain-analyze run to find a missing index.
func workflowSlowEndpoint() (types.Example, error) {
	grepHandler, err := builders.Call("call_1", "grep", map[string]any{
		"pattern":     "orders/search",
		"output_mode": "content",
		"-n":          true,
	})
	if err != nil {
		return types.Example{}, err
	}
	readRepo, err := builders.Call("call_2", "read", map[string]any{
		"file_path": "src/repositories/orders.js",
	})
	if err != nil {
		return types.Example{}, err
	}
	explain, err := builders.Call("call_3", "bash", map[string]any{
		"command":     `psql -c "EXPLAIN ANALYZE SELECT * FROM orders WHERE customer_email = 'x@example.com'"`,
		"description": "Explain the slow query",
	})
	if err != nil {
		return types.Example{}, err
	}

	return builders.NewConversation().
		User("The /orders/search endpoint is really slow, can you look into it?").
		AssistantCall("I'll trace the endpoint to its query. First, let me find the handler.", grepHandler).
		ToolResult("call_1", "grep", "src/routes/orders.js:18:router.get('/orders/search', searchOrders)\nsrc/repositories/orders.js:42:  // orders/search backing query").
		AssistantCall("The handler delegates to the orders repository. Let me read the query.", readRepo).
		ToolResult("call_2", "read", "async function searchOrders(email) {\n  return db.query('SELECT * FROM orders WHERE customer_email = $1', [email]);\n}").
		AssistantCall("A straight filter on customer_email. Let me check the query plan.", explain).
		ToolResult("call_3", "bash", "Seq Scan on orders  (cost=0.00..48291.00 rows=12 width=187) (actual time=812.331..812.402 rows=3 loops=1)\n  Filter: (customer_email = 'x@example.com'::text)\nPlanning Time: 0.101 ms\nExecution Time: 812.599 ms").
		Assistant("The query does a sequential scan over the orders table - there's no index on customer_email. Adding one will fix the latency:\n\n  CREATE INDEX idx_orders_customer_email ON orders (customer_email);\n\nExecution should drop from ~800ms to under a millisecond.").
		Build("workflows")
}
