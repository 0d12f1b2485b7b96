// Package ontology builds the static Python-programming topic hierarchy.
// Node descriptions double as the reference learning materials the
// evaluation engine scores candidate text against.
package ontology

import "ontoquiz/internal/domain"

func node(name, description, difficulty string, examples ...string) *domain.OntologyNode {
	return &domain.OntologyNode{
		Name:        name,
		Description: description,
		Difficulty:  difficulty,
		Examples:    examples,
	}
}

// Build returns the root node of the Python programming ontology.
func Build() *domain.OntologyNode {
	root := node(
		"PythonProgramming",
		"Comprehensive ontology covering Python concepts and their relationships.",
		domain.DifficultyBeginner,
	)

	// Core language features
	core := node("CoreLanguage", "Fundamental Python syntax and features.", domain.DifficultyBeginner)

	dataTypes := node("DataTypes", "Primitive and composite types available in Python.",
		domain.DifficultyBeginner, "x = 1", "name = 'Alice'")
	for _, child := range []*domain.OntologyNode{
		node("Numbers", "Integers, floats and numeric operations.", domain.DifficultyBeginner, "result = 2 + 3"),
		node("Strings", "Text sequences and related operations.", domain.DifficultyBeginner, "greeting = 'hello'.upper()"),
		node("Lists", "Mutable ordered collections.", domain.DifficultyBeginner, "items = [1, 2, 3]"),
		node("Tuples", "Immutable ordered collections.", domain.DifficultyBeginner, "point = (1, 2)"),
		node("Dictionaries", "Key-value mappings.", domain.DifficultyBeginner, "ages = {'Bob': 30}"),
		node("Sets", "Unordered collections of unique elements.", domain.DifficultyBeginner, "unique = set([1, 2, 2, 3])"),
		node("Booleans", "True/False values used in logic.", domain.DifficultyBeginner, "flag = True"),
		node("Arithmetic", "Basic mathematical operations such as addition and subtraction.",
			domain.DifficultyBeginner, "result = 2 + 2", "total = 5 - 3"),
		node("Keywords", "Reserved words that have special meaning in Python syntax.",
			domain.DifficultyBeginner, "if", "for", "while"),
		node("Builtins", "Common functions that are always available in Python.",
			domain.DifficultyBeginner, "len(obj)", "range(10)"),
		node("Modules", "Organizing and importing reusable pieces of code.",
			domain.DifficultyIntermediate, "import math"),
	} {
		dataTypes.AddChild(child)
	}

	controlStructures := node("ControlStructures", "Flow control statements and loops.",
		domain.DifficultyBeginner, "if x > 0:", "for i in range(5):")
	controlStructures.AddChild(node("Conditions", "if/elif/else statements.", domain.DifficultyBeginner, "if value == 1:"))
	controlStructures.AddChild(node("Loops", "for and while loops.", domain.DifficultyBeginner, "while count < 10:"))

	core.AddChild(dataTypes)
	core.AddChild(controlStructures)
	core.AddChild(node("Functions", "Function definitions and calls.",
		domain.DifficultyIntermediate, "def add(a, b):", "return a + b"))
	core.AddChild(node("Classes", "Object-oriented programming with classes.",
		domain.DifficultyIntermediate, "class Car:", "    pass"))
	core.AddChild(node("FileIO", "Reading from and writing to files on disk.",
		domain.DifficultyIntermediate, "open('data.txt', 'r')"))
	core.AddChild(node("Exceptions", "Handling errors with try/except blocks.",
		domain.DifficultyIntermediate, "try:\n    pass\nexcept Exception:"))

	// Standard library
	stdlib := node("StandardLibrary", "Commonly used modules that ship with Python.",
		domain.DifficultyIntermediate, "import os", "import sys")
	stdlib.AddChild(node("json", "JSON encoding and decoding.",
		domain.DifficultyIntermediate, "import json", `json.loads('{"key": 1}')`))
	stdlib.AddChild(node("csv", "CSV reading and writing.",
		domain.DifficultyIntermediate, "import csv", "csv.reader(...)"))

	// Functional programming
	functional := node("FunctionalProgramming", "Using functions as first-class objects and related paradigms.",
		domain.DifficultyIntermediate, "map(str, items)", "lambda x: x * 2")
	functional.AddChild(node("Decorators", "Functions that modify other functions or methods.",
		domain.DifficultyAdvanced, "@cache", "def func(...): ..."))

	// Data structures and algorithms
	dsAlgo := node("DataStructuresAlgorithms", "Classic data structures and algorithms.",
		domain.DifficultyIntermediate, "stack.append(x)", "sorted(items)")
	dsAlgo.AddChild(node("Searching", "Techniques such as binary search.",
		domain.DifficultyIntermediate, "bisect.bisect_left(...)"))
	dsAlgo.AddChild(node("Sorting", "Algorithms that order data.",
		domain.DifficultyIntermediate, "sorted(list_of_values)"))
	dsAlgo.AddChild(node("Algorithms", "General techniques for solving computational problems.",
		domain.DifficultyIntermediate, "binary search", "merge sort"))

	// Web development
	web := node("WebFrameworks", "Popular Python web frameworks.",
		domain.DifficultyIntermediate, "from flask import Flask")
	web.AddChild(node("Flask", "Lightweight WSGI web application framework.",
		domain.DifficultyIntermediate, "app = Flask(__name__)"))
	web.AddChild(node("Django", "Full-featured web framework for large applications.",
		domain.DifficultyIntermediate, "django-admin startproject mysite"))

	// Data science libraries
	dataScience := node("DataScienceLibraries", "Libraries used for data analysis and visualization.",
		domain.DifficultyIntermediate, "import numpy as np", "import pandas as pd")
	dataScience.AddChild(node("NumPy", "Numerical computing with arrays.",
		domain.DifficultyIntermediate, "np.array([1, 2, 3])"))
	dataScience.AddChild(node("Pandas", "Data analysis and manipulation library.",
		domain.DifficultyIntermediate, "pd.DataFrame({'a': [1, 2]})"))
	dataScience.AddChild(node("Matplotlib", "2D plotting library for creating visualizations.",
		domain.DifficultyIntermediate, "plt.plot(x, y)"))

	// Machine learning frameworks
	ml := node("MachineLearning", "Frameworks for building machine learning models.",
		domain.DifficultyAdvanced, "import tensorflow as tf")
	ml.AddChild(node("TensorFlow", "End-to-end platform for machine learning.",
		domain.DifficultyAdvanced, "tf.constant([1, 2])"))
	ml.AddChild(node("PyTorch", "Deep learning framework emphasizing flexibility.",
		domain.DifficultyAdvanced, "import torch"))

	// Testing and debugging
	testing := node("TestingDebugging", "Tools for testing and debugging Python code.",
		domain.DifficultyIntermediate, "import unittest")
	testing.AddChild(node("unittest", "Built-in unit testing framework.",
		domain.DifficultyIntermediate, "unittest.TestCase"))
	testing.AddChild(node("pytest", "Popular third-party testing framework.",
		domain.DifficultyIntermediate, "pytest.raises(ValueError)"))

	// DevOps and deployment
	devops := node("DevOps", "Practices for packaging and deploying Python applications.",
		domain.DifficultyAdvanced, "docker build", "pip install")
	devops.AddChild(node("VirtualEnvironments", "Isolated Python environments for dependency management.",
		domain.DifficultyIntermediate, "python -m venv env"))
	devops.AddChild(node("Packaging", "Creating distributable Python packages.",
		domain.DifficultyAdvanced, "python -m build"))

	concurrency := node("Concurrency", "Running multiple operations at the same time.",
		domain.DifficultyAdvanced, "import threading")

	for _, branch := range []*domain.OntologyNode{
		core, stdlib, functional, dsAlgo, web, dataScience, ml, concurrency, testing, devops,
	} {
		root.AddChild(branch)
	}
	return root
}

// IterNodes walks the ontology tree depth-first and calls fn for every node.
func IterNodes(root *domain.OntologyNode, fn func(*domain.OntologyNode)) {
	stack := []*domain.OntologyNode{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(n)
		stack = append(stack, n.Children...)
	}
}

// Materials returns the reference-text lookup: node name to description,
// plus a handful of topics the question bank covers that the tree does not.
func Materials(root *domain.OntologyNode) map[string]string {
	materials := make(map[string]string)
	IterNodes(root, func(n *domain.OntologyNode) {
		materials[n.Name] = n.Description
	})

	// Topics present in the question bank but not in the tree itself.
	materials["Algorithms"] = "Algorithms are step-by-step procedures for solving problems. " +
		"In Python, you can implement algorithms for sorting, searching, and manipulating data."
	materials["RelationalOperator"] = "In Python, relational operators compare two values and return a Boolean result (True or False)."
	materials["LogicalOperator"] = "In Python, logical operators combine multiple conditions into a single Boolean result."
	materials["Variable"] = "In Python, a variable is a named reference to a value stored in memory."

	return materials
}

// Difficulties returns a node name to difficulty label lookup.
func Difficulties(root *domain.OntologyNode) map[string]string {
	difficulties := make(map[string]string)
	IterNodes(root, func(n *domain.OntologyNode) {
		difficulties[n.Name] = n.Difficulty
	})
	return difficulties
}
