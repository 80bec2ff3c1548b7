package scenarios

import (
	"github.com/synthia-dev/datasetforge/builders"
	"github.com/synthia-dev/datasetforge/types"
)

// The skills corpus is tool-free: two-message exchanges that teach working
// disciplines (brainstorming, systematic debugging, TDD, extreme-scale
// analysis, when-stuck dispatching). Each entry is a single user turn and
// the expected reply.

type dialogue struct {
	user      string
	assistant string
}

var brainstormDialogues = []dialogue{
	{
		user:      "I want to add a dark mode toggle to my app",
		assistant: "I'm using the Brainstorming skill to refine your idea into a design.\n\nLet me start by understanding your requirements. Which approach resonates with you:\n\n1. **System-based**: Automatically match OS dark mode setting\n2. **User preference**: Manual toggle with persistent storage\n3. **Hybrid**: Default to system, allow user override\n\nWhich fits your use case?",
	},
	{
		user:      "Build a caching layer for API responses",
		assistant: "I'm using the Brainstorming skill to refine your idea into a design.\n\nLet me explore different approaches:\n\n1. **In-memory cache**: Fast, simple, but loses data on restart\n2. **Redis cache**: Persistent, scalable, requires infrastructure\n3. **Hybrid**: In-memory with Redis fallback\n\nEach has trade-offs. Which constraints matter most: Speed, persistence, or simplicity?",
	},
	{
		user:      "Add real-time notifications to the dashboard",
		assistant: "I'm using the Brainstorming skill to refine your idea into a design.\n\nI've explored three approaches:\n\n1. **WebSockets**: True real-time, persistent connection\n   - Trade-offs: More complex, requires connection management\n   - Complexity: Medium\n\n2. **Server-Sent Events**: Simpler, uni-directional\n   - Trade-offs: HTTP-based, easier to implement\n   - Complexity: Low\n\n3. **Polling**: Simplest, higher latency\n   - Trade-offs: Less efficient, delayed updates\n   - Complexity: Very low\n\nWhich approach resonates with your needs?",
	},
	{
		user:      "Implement rate limiting",
		assistant: "I'm using the Brainstorming skill to refine your idea into a design.\n\nLet me understand the purpose:\n\n- What are you protecting against: API abuse, DDoS, or fair usage enforcement?",
	},
	{
		user:      "Create a job queue system",
		assistant: "I'm using the Brainstorming skill to refine your idea into a design.\n\nI've explored different approaches:\n\n1. **Redis-based queue**: BullMQ, Bee-Queue\n   - Trade-offs: Battle-tested, requires Redis\n   - Complexity: Low-Medium\n\n2. **Database queue**: PostgreSQL with polling\n   - Trade-offs: Simple, existing infrastructure, less efficient\n   - Complexity: Low\n\n3. **Message broker**: RabbitMQ, AWS SQS\n   - Trade-offs: Robust, scalable, more infrastructure\n   - Complexity: High\n\nWhich resonates with your architecture?",
	},
	{
		user:      "Add pagination to the API",
		assistant: "I'm using the Brainstorming skill to refine your idea into a design.\n\nBefore designing, what's the data scale:\n\n- How many records: Hundreds, thousands, or millions?",
	},
}

var debuggingDialogues = []dialogue{
	{
		user:      "The login API returns 500 error",
		assistant: "I'm using the Systematic Debugging skill to investigate this.\n\n**Phase 1: Root Cause Investigation**\n\nBefore attempting ANY fix, let me read the error message carefully and gather evidence. I'll check the server logs and trace the error.",
	},
	{
		user:      "Here's the error: TypeError: Cannot read property 'hash' of undefined",
		assistant: "**Evidence gathered:**\n- Error: `password.hash` is undefined\n- This means password object doesn't exist\n\n**Phase 2: Pattern Analysis**\n\nLet me find working examples. I'll check how authentication works in the registration endpoint.",
	},
	{
		user:      "Login uses SELECT id, email FROM users WHERE email = $1",
		assistant: "**Root cause found:** Login query doesn't include password field!\n\n**Phase 3: Hypothesis and Testing**\n\nHypothesis: Login query is missing the password field from SELECT, causing `password` to be undefined.\n\n**Phase 4: Implementation**\n\nFirst, I must create a failing test case before fixing. This proves the fix works.",
	},
	{
		user:      "Database connection keeps timing out",
		assistant: "I'm using the Systematic Debugging skill.\n\n**Phase 1: Root Cause Investigation**\n\nThis is a multi-component system (app, network, database). I need to gather evidence at EACH layer before proposing fixes.\n\n**Layer 1: Application logs**\nLet me check what the app is reporting.",
	},
	{
		user:      "Let me try a quick fix to add console.log",
		assistant: "**STOP - Red Flag Detected**\n\nYou're suggesting \"quick fix\" without root cause investigation. This violates the Iron Law:\n\n```\nNO FIXES WITHOUT ROOT CAUSE INVESTIGATION FIRST\n```\n\nI must complete Phase 1 (gathering evidence) before attempting any changes. Let me properly investigate first.",
	},
	{
		user:      "CI build passes locally but fails in CI",
		assistant: "I'm using the Systematic Debugging skill.\n\n**Phase 1: Root Cause Investigation - Check Recent Changes**\n\nWhat changed? Let me check:\n1. Code changes (git diff)\n2. Dependency changes (package.json)\n3. Environmental differences (Node version, OS)",
	},
	{
		user:      "I've tried 3 different fixes and none worked",
		assistant: "**STOP - Critical Pattern Detected**\n\nYou've attempted 3+ fixes without success. This is a red flag from the Systematic Debugging skill:\n\n**If 3+ Fixes Failed: Question Architecture**\n\nThis pattern indicates:\n- Each fix reveals new problems in different places\n- Might be a fundamental architectural issue\n- Should discuss with partner before attempting Fix #4\n\nLet me analyze: What were the 3 fixes and what new symptoms did each reveal?",
	},
}

var tddDialogues = []dialogue{
	{
		user:      "Implement a retry function for failed operations",
		assistant: "I'm using the Test-Driven Development skill.\n\n**RED - Write Failing Test**\n\nBefore writing ANY implementation code, I'll write a test that shows what should happen:\n\n```typescript\ntest('retries failed operations 3 times', async () => {\n  let attempts = 0;\n  const operation = () => {\n    attempts++;\n    if (attempts < 3) throw new Error('fail');\n    return 'success';\n  };\n\n  const result = await retryOperation(operation);\n\n  expect(result).toBe('success');\n  expect(attempts).toBe(3);\n});\n```\n\nNow let me run this test to watch it fail.",
	},
	{
		user:      "Test fails: retryOperation is not defined",
		assistant: "**Verify RED:** Test fails for expected reason (feature missing).\n\n**GREEN - Minimal Code**\n\nNow I'll write the simplest code to pass this test:\n\n```typescript\nasync function retryOperation<T>(fn: () => Promise<T>): Promise<T> {\n  for (let i = 0; i < 3; i++) {\n    try {\n      return await fn();\n    } catch (e) {\n      if (i === 2) throw e;\n    }\n  }\n  throw new Error('unreachable');\n}\n```\n\nLet me run the test to verify it passes.",
	},
	{
		user:      "Let me write the implementation first then add tests",
		assistant: "**STOP - Red Flag Detected**\n\nThis violates the Iron Law of TDD:\n\n```\nNO PRODUCTION CODE WITHOUT A FAILING TEST FIRST\n```\n\n**Why order matters:**\n\nTests written after code pass immediately. Passing immediately proves nothing:\n- Might test wrong thing\n- Might test implementation, not behavior\n- Might miss edge cases\n- You never saw it catch the bug\n\nWrite the test first. Watch it fail. Then implement.",
	},
	{
		user:      "I already manually tested it, works fine",
		assistant: "**Common Rationalization Detected**\n\nManual testing is not automated testing:\n- No record of what you tested\n- Can't re-run when code changes\n- Easy to forget cases under pressure\n- \"It worked when I tried it\" is not comprehensive\n\nAutomated tests are systematic. They run the same way every time.\n\nLet me write a failing test first, then we'll know it's truly tested.",
	},
	{
		user:      "Refactor the authentication module",
		assistant: "I'm using the Test-Driven Development skill for refactoring.\n\n**Step 1: Verify existing tests**\n\nRefactoring requires existing tests. Let me check test coverage for the auth module.\n\nIf tests exist and pass: Refactor while keeping tests green.\nIf no tests: Write tests FIRST for existing behavior, then refactor.",
	},
	{
		user:      "This seems too simple to test",
		assistant: "**Common Rationalization: \"Too simple to test\"**\n\nReality:\n- Simple code breaks\n- Test takes 30 seconds\n- Prevents future bugs\n- Documents expected behavior\n\nNo code is too simple for TDD. Write the test.",
	},
	{
		user:      "My test passed immediately, is that ok?",
		assistant: "**RED FLAG - Test Passes Immediately**\n\nIf the test passed without writing implementation, you're testing existing behavior (not TDD).\n\n**What this means:**\n- You didn't watch it fail\n- Can't verify it actually tests the right thing\n- Might be testing implementation details\n\n**Fix:** Delete implementation first, watch test fail, then reimplement.",
	},
}

var scaleDialogues = []dialogue{
	{
		user:      "Will this in-memory session storage work in production?",
		assistant: "I'm using the Scale Game skill to test at extremes.\n\n**Scale Dimension: Duration**\n\n- **Normal scale:** Works for hours/days\n- **At years:** Memory grows unbounded, eventual crash\n- **Reveals:** Need persistence or periodic cleanup, can't rely on memory alone\n\n**Scale Dimension: Users**\n\n- **1 user:** Works fine\n- **1M users:** Sessions consume gigabytes of RAM\n- **Reveals:** Need external session store (Redis, database)\n\nExtreme testing shows this won't scale to production. Recommend Redis for session storage.",
	},
	{
		user:      "Can we poll the API every second for updates?",
		assistant: "I'm using the Scale Game skill.\n\n**Scale Dimension: Users**\n\n- **1 user:** 1 request/second, works fine\n- **10,000 users:** 10,000 requests/second\n  - Server overwhelmed\n  - Database connection pool exhausted\n  - Costs explode\n- **Reveals:** Need WebSockets or Server-Sent Events for real-time updates\n\n**Scale Dimension: Duration**\n\n- **5 minutes:** Polling acceptable\n- **24/7:** Billions of unnecessary requests\n- **Reveals:** Push-based architecture required\n\nExtreme testing: Use WebSockets, not polling.",
	},
	{
		user:      "Is it ok to load all users into memory?",
		assistant: "I'm using the Scale Game skill.\n\n**Scale Dimension: Volume**\n\n- **10 users:** Load all, works fine (few KB)\n- **1M users:** Memory exhaustion, server crash (100s of MB)\n- **Reveals:** Need pagination, streaming, or database queries\n\n**Scale Dimension: Duration**\n\n- **One-time script:** Loading all might be acceptable\n- **Long-running server:** Memory leak, gradual degradation\n- **Reveals:** Stateless queries, don't hold references\n\nExtreme testing: Never load unbounded data into memory. Use pagination.",
	},
	{
		user:      "Is client-side validation enough?",
		assistant: "I'm using the Scale Game skill.\n\n**Scale Dimension: Users**\n\n- **Honest users:** Client validation works\n- **1 malicious user:** Bypasses client validation entirely\n  - Tampers with JavaScript\n  - Sends direct API requests\n  - Injects malicious data\n- **Reveals:** Server-side validation is mandatory\n\nClient validation = UX enhancement.\nServer validation = security requirement.\n\nExtreme testing: Always validate on server.",
	},
	{
		user:      "Can we store uploaded files in the database?",
		assistant: "I'm using the Scale Game skill.\n\n**Scale Dimension: Volume**\n\n- **10 files (1MB each):** Database stores 10MB, works fine\n- **10M files:** Database bloats to 10TB\n  - Backup times: hours\n  - Query performance: degraded\n  - Storage costs: extreme\n- **Reveals:** Database for metadata, object storage (S3) for files\n\n**Scale Dimension: File Size**\n\n- **Small files (<1MB):** Database handles it\n- **Large files (1GB videos):** Memory exhaustion, connection timeouts\n- **Reveals:** Streaming required, can't load into memory\n\nExtreme testing: Use object storage (S3, GCS) for files, database for metadata only.",
	},
	{
		user:      "Should we handle errors by retrying?",
		assistant: "I'm using the Scale Game skill.\n\n**Scale Dimension: Failure Rate**\n\n- **Never fails:** Retry logic unused\n- **Always fails:** Infinite retry loop, resource exhaustion\n- **Reveals:** Need:\n  - Max retry limit\n  - Exponential backoff\n  - Circuit breaker pattern\n\n**Scale Dimension: Volume**\n\n- **10 errors/day:** Simple retry works\n- **1M errors/day:** Retry storm overwhelms system\n- **Reveals:** Need error budget, graceful degradation\n\nExtreme testing shows naive retry is dangerous. Implement circuit breaker + exponential backoff.",
	},
}

var whenStuckDialogues = []dialogue{
	{
		user:      "I'm stuck on this problem, not sure how to proceed",
		assistant: "I'm using the When Stuck skill to identify the right technique.\n\nLet me understand what type of stuck you are:\n\n- **Complexity spiraling?** Same thing implemented 5+ ways, growing special cases\n- **Need innovation?** Conventional solutions don't fit\n- **Recurring patterns?** Same issue in different places\n- **Forced by assumptions?** Feel like \"this must be done this way\"\n- **Scale uncertainty?** Unsure if it will work in production\n- **Code broken?** Wrong behavior, test failing\n\nWhich describes your situation?",
	},
	{
		user:      "I keep adding special cases to handle different scenarios",
		assistant: "**Stuck-type identified: Complexity spiraling**\n\nThis is the perfect use case for skills/problem-solving/simplification-cascades.\n\nThe pattern suggests each new requirement is adding another if/else branch, making the code increasingly complex. Let me apply simplification techniques to find the underlying pattern.",
	},
	{
		user:      "The solution feels forced, like I'm fighting against constraints",
		assistant: "**Stuck-type identified: Forced by assumptions**\n\nTime for skills/problem-solving/inversion-exercise.\n\nWhen solutions feel forced, we're often stuck on unquestioned assumptions. Let me invert the constraints to find what we're taking for granted.",
	},
	{
		user:      "It works in dev but I'm worried about production scale",
		assistant: "**Stuck-type identified: Scale uncertainty**\n\nLet me use skills/problem-solving/scale-game.\n\nI'll test your approach at extremes (1000x bigger, 1000x faster, etc.) to expose fundamental limits hidden at normal scales.",
	},
	{
		user:      "I see the symptom but can't find what's causing it",
		assistant: "**Stuck-type identified: Root cause unknown**\n\nLet me use skills/debugging/root-cause-tracing.\n\nI'll trace backward through the call stack from the symptom to find where the bad value originates, fixing at the source rather than the symptom.",
	},
	{
		user:      "I'm not sure which of these stuck-types applies",
		assistant: "Let me ask clarifying questions:\n\n1. Is code behaving incorrectly (wrong output, test failure)?\n   - If YES → Debugging\n   - If NO → Continue\n\n2. Do you keep adding if/else or special cases?\n   - If YES → Simplification cascades\n   - If NO → Continue\n\n3. Does this feel like a solved problem but you can't find the solution?\n   - If YES → Meta-pattern recognition\n   - If NO → Continue\n\n4. Will this work at 1000x scale (users, data, speed)?\n   - If UNSURE → Scale game\n\nLet's start with #1: Is code behaving incorrectly?",
	},
}

// SkillExamples produces the tool-free working-discipline corpus.
func SkillExamples() ([]types.Example, error) {
	tables := [][]dialogue{
		brainstormDialogues,
		debuggingDialogues,
		tddDialogues,
		scaleDialogues,
		whenStuckDialogues,
	}
	var examples []types.Example
	for _, table := range tables {
		for _, d := range table {
			ex, err := builders.NewConversation().
				User(d.user).
				Assistant(d.assistant).
				Build("skills")
			if err != nil {
				return nil, err
			}
			examples = append(examples, ex)
		}
	}
	return examples, nil
}
