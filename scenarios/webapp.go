package scenarios

import (
	"github.com/synthia-dev/datasetforge/builders"
	"github.com/synthia-dev/datasetforge/types"
)

// The webapp corpus teaches stack-appropriate frontend work on Flask
// projects: Jinja2 templates and plain HTML rather than a separate SPA.

const flaskAppSource = `from flask import Flask, render_template, request, redirect, url_for
from models import Todo, db

app = Flask(__name__)
app.config['SQLALCHEMY_DATABASE_URI'] = 'sqlite:///todos.db'
db.init_app(app)

@app.route('/')
def index():
    todos = Todo.query.all()
    return render_template('index.html', todos=todos)

@app.route('/add', methods=['POST'])
def add_task():
    task = request.form.get('task')
    new_todo = Todo(task=task, completed=False)
    db.session.add(new_todo)
    db.session.commit()
    return redirect(url_for('index'))

@app.route('/complete/<int:id>')
def complete_task(id):
    todo = Todo.query.get(id)
    todo.completed = True
    db.session.commit()
    return redirect(url_for('index'))

@app.route('/delete/<int:id>')
def delete_task(id):
    todo = Todo.query.get(id)
    db.session.delete(todo)
    db.session.commit()
    return redirect(url_for('index'))

if __name__ == '__main__':
    app.run(debug=True)`

const todoTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Todo App</title>
    <style>
        body { font-family: sans-serif; background: #f5f5f5; padding: 40px 20px; }
        .container { max-width: 600px; margin: 0 auto; background: white; border-radius: 12px; padding: 20px; }
        .add-form { display: flex; gap: 10px; margin-bottom: 20px; }
        .add-form input { flex: 1; padding: 12px; border: 1px solid #ddd; border-radius: 8px; }
        .add-form button { padding: 12px 24px; background: #667eea; color: white; border: none; border-radius: 8px; cursor: pointer; }
        .todo-item { display: flex; align-items: center; padding: 15px; background: #f8f9fa; border-radius: 8px; margin-bottom: 10px; }
        .todo-item.completed .todo-text { text-decoration: line-through; color: #6c757d; }
        .todo-text { flex: 1; }
        .btn { padding: 8px 16px; border-radius: 6px; text-decoration: none; color: white; }
        .btn-complete { background: #28a745; }
        .btn-delete { background: #dc3545; }
    </style>
</head>
<body>
    <div class="container">
        <h1>My Todo List</h1>
        <form action="/add" method="POST" class="add-form">
            <input type="text" name="task" placeholder="Add a new task..." required>
            <button type="submit">Add Task</button>
        </form>
        {% if todos %}
            {% for todo in todos %}
            <div class="todo-item {% if todo.completed %}completed{% endif %}">
                <div class="todo-text">{{ todo.task }}</div>
                {% if not todo.completed %}
                <a href="/complete/{{ todo.id }}" class="btn btn-complete">Complete</a>
                {% endif %}
                <a href="/delete/{{ todo.id }}" class="btn btn-delete" onclick="return confirm('Delete this task?')">Delete</a>
            </div>
            {% endfor %}
        {% else %}
            <p>No tasks yet. Add one above to get started!</p>
        {% endif %}
    </div>
</body>
</html>`

func flaskTodoCRUD() (types.Example, error) {
	listFiles, err := builders.Call("call_1", "glob", map[string]any{"pattern": "**/*.py"})
	if err != nil {
		return types.Example{}, err
	}
	readApp, err := builders.Call("call_2", "read", map[string]any{"file_path": "app.py"})
	if err != nil {
		return types.Example{}, err
	}
	mkdir, err := builders.Call("call_3", "bash", map[string]any{
		"command":     "mkdir -p templates",
		"description": "Create templates directory",
	})
	if err != nil {
		return types.Example{}, err
	}
	writeTpl, err := builders.Call("call_4", "write", map[string]any{
		"file_path": "templates/index.html",
		"content":   todoTemplate,
	})
	if err != nil {
		return types.Example{}, err
	}
	return builders.NewConversation().
		User("I have a Python/Flask todo app. Could you build a template/front end for it that lets me do CRUD operations on the TODO backend?").
		AssistantCall("I'll help you build HTML templates for your Flask todo app. First, let me check the Flask backend structure.", listFiles).
		ToolResult("call_1", "glob", "app.py\nmodels.py").
		AssistantCall("Let me check the Flask app to understand the routes.", readApp).
		ToolResult("call_2", "read", flaskAppSource).
		AssistantCall("Your Flask app has routes for viewing, adding, completing, and deleting todos. I'll create HTML templates with Jinja2. First, the templates directory.", mkdir).
		ToolResult("call_3", "bash", "stdout:\n\nstderr:\n").
		AssistantCall("Now I'll create the main template with the todo interface.", writeTpl).
		ToolResult("call_4", "write", "File written successfully").
		Assistant("I've created a complete CRUD interface for your Flask todo app:\n\n- Add new todos with a simple form\n- Mark todos as complete (strikethrough styling)\n- Delete todos with confirmation\n- Empty state when no todos exist\n\nIt uses HTML with Jinja2 templating and embedded CSS, so no build tools are needed. Your Flask routes (/, /add, /complete/<id>, /delete/<id>) are all wired up. Run python app.py and visit http://localhost:5000.").
		Build("webapp")
}

const createArticleRoute = `@app.route('/create', methods=['GET', 'POST'])
def create_article():
    if request.method == 'POST':
        title = request.form.get('title')
        content = request.form.get('content')
        article = Article(title=title, content=content)
        db.session.add(article)
        db.session.commit()
        return redirect(url_for('index'))
    return render_template('create.html')`

const createArticleTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Create Article</title>
    <style>
        body { font-family: sans-serif; max-width: 800px; margin: 40px auto; padding: 20px; background: #f5f5f5; }
        .form-container { background: white; padding: 30px; border-radius: 8px; }
        .form-group { margin-bottom: 20px; }
        label { display: block; margin-bottom: 8px; font-weight: 600; }
        input[type="text"], textarea { width: 100%; padding: 12px; border: 1px solid #ddd; border-radius: 4px; }
        textarea { min-height: 300px; resize: vertical; }
        button { background: #007bff; color: white; padding: 12px 30px; border: none; border-radius: 4px; cursor: pointer; }
    </style>
</head>
<body>
    <div class="form-container">
        <h1>Create New Article</h1>
        <form action="/create" method="POST">
            <div class="form-group">
                <label for="title">Title</label>
                <input type="text" id="title" name="title" required>
            </div>
            <div class="form-group">
                <label for="content">Content</label>
                <textarea id="content" name="content" required></textarea>
            </div>
            <button type="submit">Publish Article</button>
        </form>
    </div>
</body>
</html>`

func flaskBlogCreate() (types.Example, error) {
	readApp, err := builders.Call("call_1", "read", map[string]any{"file_path": "app.py"})
	if err != nil {
		return types.Example{}, err
	}
	writeTpl, err := builders.Call("call_2", "write", map[string]any{
		"file_path": "templates/create.html",
		"content":   createArticleTemplate,
	})
	if err != nil {
		return types.Example{}, err
	}
	return builders.NewConversation().
		User("Add a create article form to my Flask blog").
		AssistantCall("I'll create an HTML template for creating articles. Let me check your Flask routes first.", readApp).
		ToolResult("call_1", "read", createArticleRoute).
		AssistantCall("The /create route accepts a title and content. I'll create a form template to match.", writeTpl).
		ToolResult("call_2", "write", "File written successfully").
		Assistant("Created templates/create.html with a clean form for creating articles. It has a title input, a large textarea for content, and a publish button posting to your existing /create route.").
		Build("webapp")
}

const baseTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{% block title %}Flask App{% endblock %}</title>
    <link rel="stylesheet" href="{{ url_for('static', filename='css/style.css') }}">
</head>
<body>
    <nav>
        <div class="container">
            <h1>My Flask App</h1>
            <ul>
                <li><a href="/">Home</a></li>
                <li><a href="/about">About</a></li>
            </ul>
        </div>
    </nav>
    <main class="container">
        {% block content %}{% endblock %}
    </main>
</body>
</html>`

func flaskStackDetection() (types.Example, error) {
	listPy, err := builders.Call("call_1", "glob", map[string]any{"pattern": "**/*.py"})
	if err != nil {
		return types.Example{}, err
	}
	listDir, err := builders.Call("call_2", "bash", map[string]any{
		"command":     "ls -la",
		"description": "List directory contents",
	})
	if err != nil {
		return types.Example{}, err
	}
	mkdirs, err := builders.Call("call_3", "bash", map[string]any{
		"command":     "mkdir -p templates static/css",
		"description": "Create templates and static directories",
	})
	if err != nil {
		return types.Example{}, err
	}
	writeBase, err := builders.Call("call_4", "write", map[string]any{
		"file_path": "templates/base.html",
		"content":   baseTemplate,
	})
	if err != nil {
		return types.Example{}, err
	}
	return builders.NewConversation().
		User("Build a frontend for my Flask API").
		AssistantCall("I'll create a frontend for your Flask app. Let me first check what type of project this is.", listPy).
		ToolResult("call_1", "glob", "app.py\nmodels.py\nroutes.py").
		AssistantCall("This is a Flask/Python project. Let me check for any existing templates directory.", listDir).
		ToolResult("call_2", "bash", "stdout:\ntotal 32\ndrwxr-xr-x  5 user user 4096 Jan 15 10:00 .\n-rw-r--r--  1 user user  456 Jan 15 10:00 app.py\n-rw-r--r--  1 user user  234 Jan 15 09:30 models.py\n-rw-r--r--  1 user user  123 Jan 15 09:15 routes.py\n\nstderr:\n").
		AssistantCall("For a Flask project, I'll create HTML templates with Jinja2 instead of a separate React app. This is the standard Flask approach and requires no build tools.", mkdirs).
		ToolResult("call_3", "bash", "stdout:\n\nstderr:\n").
		AssistantCall("Now I'll create a base HTML template with Jinja2.", writeBase).
		ToolResult("call_4", "write", "File written successfully").
		Assistant("Created a Jinja2 template structure for your Flask app. This is the recommended approach for Flask projects: simple HTML templates that Flask renders directly, with no React or build process needed.").
		Build("webapp")
}

// WebAppExamples produces the Flask frontend corpus.
func WebAppExamples() ([]types.Example, error) {
	examples := make([]types.Example, 0, 3)
	for _, build := range []func() (types.Example, error){
		flaskTodoCRUD,
		flaskBlogCreate,
		flaskStackDetection,
	} {
		ex, err := build()
		if err != nil {
			return nil, err
		}
		examples = append(examples, ex)
	}
	return examples, nil
}
