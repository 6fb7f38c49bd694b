/*
File    : clasp/ast/json.go

ToJSONValue renders a Node tree into a plain map[string]any/[]any tree
suitable for encoding/json — the debug `--ast-json` path of
cmd/claspfront. It's a thin walker rather than per-kind MarshalJSON
methods, but follows the same idiom th13vn-solast-go/pkg/ast uses for
its SourceUnit: a "kind" discriminator field alongside the node's own
fields, safe to round-trip through json.Marshal without custom tags on
every node struct.
*/
package ast

import "github.com/claspc/clasp/token"

func tokenJSON(t token.Token) map[string]any {
	return map[string]any{"lexeme": t.Lexeme, "line": t.LineIndex, "column": t.ColumnIndex}
}

func nodesJSON(ns []Node) []any {
	out := make([]any, len(ns))
	for i, n := range ns {
		out[i] = ToJSONValue(n)
	}
	return out
}

func paramsJSON(ps []Param) []any {
	out := make([]any, len(ps))
	for i, p := range ps {
		out[i] = map[string]any{"name": tokenJSON(p.Name), "type": ToJSONValue(p.Type)}
	}
	return out
}

// ToJSONValue converts n into a JSON-friendly value. A nil Node
// converts to nil.
func ToJSONValue(n Node) any {
	if n == nil {
		return nil
	}
	switch node := n.(type) {
	case *BinOpNode:
		return map[string]any{"kind": "BinOp", "left": ToJSONValue(node.Left), "op": tokenJSON(node.Op), "right": ToJSONValue(node.Right)}
	case *UnaryOpNode:
		return map[string]any{"kind": "UnaryOp", "op": tokenJSON(node.Op), "right": ToJSONValue(node.Right)}
	case *PostfixNode:
		return map[string]any{"kind": "Postfix", "left": ToJSONValue(node.Left), "op": tokenJSON(node.Op)}
	case *NumberLiteralNode:
		return map[string]any{"kind": "NumberLiteral", "value": tokenJSON(node.Value)}
	case *VarRefNode:
		return map[string]any{"kind": "VarRef", "name": tokenJSON(node.Name)}
	case *FnCallNode:
		return map[string]any{"kind": "FnCall", "callee": ToJSONValue(node.Callee), "args": nodesJSON(node.Args)}
	case *ReturnNode:
		return map[string]any{"kind": "Return", "value": ToJSONValue(node.Value)}
	case *ExprStmtNode:
		return map[string]any{"kind": "ExprStmt", "expr": ToJSONValue(node.Expr)}
	case *BlockNode:
		return map[string]any{"kind": "Block", "body": nodesJSON(node.Body)}
	case *VarDeclNode:
		return map[string]any{
			"kind": node.DeclKind.String(), "name": tokenJSON(node.Name),
			"type": ToJSONValue(node.Type), "initializer": ToJSONValue(node.Initializer),
		}
	case *FnDeclNode:
		return map[string]any{
			"kind": "FnDecl", "name": tokenJSON(node.Name), "retType": ToJSONValue(node.RetType),
			"params": paramsJSON(node.Params), "body": ToJSONValue(node.Body),
		}
	case *CondNode:
		return map[string]any{"kind": node.CondKind.String(), "cond": ToJSONValue(node.Cond), "body": ToJSONValue(node.Body)}
	case *TypeSingleNode:
		return map[string]any{"kind": "TypeSingle", "name": tokenJSON(node.Name)}
	case *TypeArrayNode:
		return map[string]any{"kind": "TypeArray", "enclosed": ToJSONValue(node.Enclosed)}
	case *TypeFnNode:
		return map[string]any{"kind": "TypeFn", "params": nodesJSON(node.Params), "ret": ToJSONValue(node.Ret)}
	case *TypeTemplateNode:
		return map[string]any{"kind": "TypeTemplate", "name": tokenJSON(node.TypeName), "args": nodesJSON(node.Args)}
	case *TypePtrNode:
		return map[string]any{"kind": "TypePtr", "pointed": ToJSONValue(node.Pointed)}
	default:
		return map[string]any{"kind": "Unknown"}
	}
}
